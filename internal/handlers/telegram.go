package handlers

import (
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"

	"github.com/themonkeyd/devmeetingbot/internal/domain/contract"
)

// TelegramHandler wires the bot commands to the rotation service. All
// user-facing text is French, matching the group the bot serves.
type TelegramHandler struct {
	bot         contract.TelegramBot
	service     contract.RotationService
	groupChatID int64
	loc         *time.Location
	now         func() time.Time
	log         zerolog.Logger
}

func New(bot contract.TelegramBot, service contract.RotationService, groupChatID int64, loc *time.Location, log zerolog.Logger) *TelegramHandler {
	return &TelegramHandler{
		bot:         bot,
		service:     service,
		groupChatID: groupChatID,
		loc:         loc,
		now:         time.Now,
		log:         log,
	}
}

func (h *TelegramHandler) Register() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/mois", h.handleMois)
	h.bot.Handle("/prochain", h.handleProchain)
	h.bot.Handle("/planning", h.handlePlanning)
	h.bot.Handle("/reset", h.handleReset)
}

func (h *TelegramHandler) handleStart(c tele.Context) error {
	return c.Send(startMessage(), tele.ModeMarkdown)
}

func (h *TelegramHandler) handleMois(c tele.Context) error {
	now := h.now().In(h.loc)
	month := int(now.Month())

	speaker, err := h.service.ResolveSpeaker(month, now.Year())
	if err != nil {
		h.log.Error().Err(err).Int("month", month).Msg("failed to resolve current speaker")
		return c.Send(errorMessage())
	}

	return c.Send(moisMessage(month, speaker), tele.ModeMarkdown)
}

func (h *TelegramHandler) handleProchain(c tele.Context) error {
	now := h.now().In(h.loc)
	month, year := nextMonthYear(int(now.Month()), now.Year())

	speaker, err := h.service.ResolveSpeaker(month, year)
	if err != nil {
		h.log.Error().Err(err).Int("month", month).Msg("failed to resolve next speaker")
		return c.Send(errorMessage())
	}

	return c.Send(prochainMessage(month, speaker), tele.ModeMarkdown)
}

func (h *TelegramHandler) handlePlanning(c tele.Context) error {
	now := h.now().In(h.loc)

	planning, err := h.service.Planning(int(now.Month()), now.Year())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to build planning")
		return c.Send(errorMessage())
	}

	return c.Send(planningMessage(planning), tele.ModeMarkdown)
}

func (h *TelegramHandler) handleReset(c tele.Context) error {
	if err := h.service.Reset(); err != nil {
		h.log.Error().Err(err).Msg("failed to reset rotation state")
		return c.Send(resetFailedMessage())
	}

	return c.Send(resetMessage())
}

// SendMonthlyAnnouncement posts the current month's speaker to the group
// chat. It is invoked by the monthly scheduler; the scheduler logs any
// failure and never retries.
func (h *TelegramHandler) SendMonthlyAnnouncement() error {
	now := h.now().In(h.loc)
	month := int(now.Month())

	speaker, err := h.service.ResolveSpeaker(month, now.Year())
	if err != nil {
		return err
	}

	_, err = h.bot.Send(tele.ChatID(h.groupChatID), announcementMessage(month, speaker), tele.ModeMarkdown)
	return err
}

// nextMonthYear wraps December into January of the following year.
func nextMonthYear(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}
