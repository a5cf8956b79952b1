package handlers

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/themonkeyd/devmeetingbot/internal/domain"
	"github.com/themonkeyd/devmeetingbot/internal/domain/entity"
)

func startMessage() string {
	return "🤖 *Bienvenue à la gestion des réunions mensuelles !*\n\n" +
		"📋 *Commandes disponibles :*\n" +
		"• `/mois` - Qui dirige la réunion ce mois-ci ?\n" +
		"• `/prochain` - Qui dirige le mois prochain ?\n" +
		"• `/planning` - Voir le planning complet du cycle actuel\n" +
		"• `/reset` - Réinitialiser les données (admin)\n\n" +
		"_Les cycles alternent entre ordre normal et inversé tous les 5 mois._"
}

func moisMessage(month int, speaker string) string {
	return fmt.Sprintf("📅 *Réunion du mois de %s*\n\n👤 *Responsable : %s*",
		capitalize(domain.MonthNames[month]), speaker)
}

func prochainMessage(month int, speaker string) string {
	return fmt.Sprintf("🔜 *Prochaine réunion : %s*\n\n👤 *Responsable : %s*",
		capitalize(domain.MonthNames[month]), speaker)
}

func planningMessage(planning *entity.Planning) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔁 *Cycle actuel : %s*\n\n", planning.CycleLabel)

	for i, entry := range planning.Entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		marker := ""
		if entry.IsNext {
			marker = " ← PROCHAIN"
		}
		fmt.Fprintf(&b, "  • %s → %s%s", padRight(capitalize(entry.MonthName), 15), entry.Speaker, marker)
	}

	return b.String()
}

func announcementMessage(month int, speaker string) string {
	return moisMessage(month, speaker) + "\n\nUtilisez `/planning` pour voir le calendrier complet."
}

func resetMessage() string {
	return "✅ Données réinitialisées !"
}

func resetFailedMessage() string {
	return "⚠️ La réinitialisation a échoué, réessayez plus tard."
}

func errorMessage() string {
	return "⚠️ Impossible de déterminer le responsable, réessayez plus tard."
}

// capitalize uppercases the first rune (month names carry accents, so this
// has to be rune-aware).
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// padRight pads to a rune count, not a byte count, so accented month names
// line up.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
