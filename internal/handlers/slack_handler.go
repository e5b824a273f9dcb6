package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/diegoclair/crew-planner/internal/domain/service"
	slackcmd "github.com/diegoclair/crew-planner/internal/domain/slack"
	"github.com/diegoclair/crew-planner/internal/logger"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	viewService   contract.ViewService
	bagService    contract.BagService
	signingSecret string
	log           logger.Logger
	now           func() time.Time
}

func New(viewService contract.ViewService, bagService contract.BagService, signingSecret string, log logger.Logger) *SlackHandler {
	return &SlackHandler{
		viewService:   viewService,
		bagService:    bagService,
		signingSecret: signingSecret,
		log:           log,
		now:           time.Now,
	}
}

// WithClock replaces the handler's notion of today.
func (h *SlackHandler) WithClock(now func() time.Time) *SlackHandler {
	h.now = now
	return h
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	h.log.Debugw("slash command", map[string]any{"command": string(cmd.Type), "channel": s.ChannelID, "user": s.UserID})
	response := h.handleCommand(r.Context(), cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdCrew:
		return h.handleCrew(ctx, cmd)
	case slackcmd.CmdWeek:
		return h.handleWeek(ctx, cmd)
	case slackcmd.CmdHolidays:
		return h.handleHolidays(cmd)
	case slackcmd.CmdBags:
		return h.handleBags(ctx, cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Okänt kommando")
	}
}

func (h *SlackHandler) handleCrew(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Ange en bil: `/planering crew BIL [YYYY-MM-DD]`")
	}

	truck := cmd.Args[0]
	day := calendar.Truncate(h.now())
	if len(cmd.Args) > 1 {
		parsed, err := calendar.ParseDay(cmd.Args[1])
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Ogiltigt datum %q, använd YYYY-MM-DD", cmd.Args[1]))
		}
		day = parsed
	}

	crew, err := h.viewService.Crew(ctx, truck, day)
	if err != nil {
		return h.createErrorResponse(h.describeError("Kunde inte hämta bemanning", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🚚 *%s* %s: %s", truck, calendar.FormatDay(day), service.CrewText(crew)),
	}
}

func (h *SlackHandler) handleWeek(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	key := calendar.ISOWeekKey(h.now())
	if len(cmd.Args) > 0 {
		monday, err := calendar.ParseDayOrWeek(cmd.Args[0])
		if err != nil {
			return h.createErrorResponse(fmt.Sprintf("Ogiltig vecka %q, använd YYYY-Www eller YYYY-MM-DD", cmd.Args[0]))
		}
		key = calendar.ISOWeekKey(monday)
	}

	board, err := h.viewService.Week(ctx, key, contract.Filter{})
	if err != nil {
		return h.createErrorResponse(h.describeError("Kunde inte hämta veckan", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         service.RosterMessage(board) + "\n" + jobsText(board),
	}
}

func (h *SlackHandler) handleHolidays(cmd *slackcmd.Command) *slack.Msg {
	year := h.now().Year()
	if len(cmd.Args) > 0 {
		parsed, err := strconv.Atoi(cmd.Args[0])
		if err != nil || parsed < 1583 || parsed > 9999 {
			return h.createErrorResponse(fmt.Sprintf("Ogiltigt år %q", cmd.Args[0]))
		}
		year = parsed
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "*Helgdagar %d:*\n", year)
	for _, holiday := range calendar.SwedishHolidays(year) {
		fmt.Fprintf(&sb, "• %s %s\n", calendar.FormatDay(holiday.Date), holiday.Name)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.TrimSuffix(sb.String(), "\n"),
	}
}

func (h *SlackHandler) handleBags(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Ange ett projekt: `/planering bags PROJEKT-ID`")
	}

	projectID, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil || projectID <= 0 {
		return h.createErrorResponse(fmt.Sprintf("Ogiltigt projekt-id %q", cmd.Args[0]))
	}

	status, err := h.bagService.ProjectStatus(ctx, projectID)
	if err != nil {
		return h.createErrorResponse(h.describeError("Kunde inte hämta säckstatus", err))
	}

	if status == nil {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("Projekt %d har ingen säckplan.", projectID),
		}
	}

	text := fmt.Sprintf("📦 Projekt %d: plan %d, använt %d, kvar %d", projectID, status.Plan, status.Used, status.Remaining)
	if status.Overrun > 0 {
		text += fmt.Sprintf(", ⚠️ överdrag %d", status.Overrun)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// describeError turns a service error into a message for the user. Unexpected
// failures are logged and reported generically.
func (h *SlackHandler) describeError(prefix string, err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return prefix + ": hittades inte"
	}
	if ve, ok := domain.AsValidationError(err); ok {
		return prefix + ": " + ve.Message
	}
	if pe, ok := domain.AsParseError(err); ok {
		return prefix + ": " + pe.Reason
	}
	h.log.Errorf("%s: %v", prefix, err)
	return prefix + ", försök igen om en stund"
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func jobsText(board *entity.Board) string {
	var sb strings.Builder
	sb.WriteString("\n*Jobb:*")
	var found bool
	for _, day := range board.Days {
		for _, lane := range day.Lanes {
			for _, entry := range lane.Entries {
				if entry.Span == entity.SpanMiddle {
					continue
				}
				found = true
				truck := lane.Truck
				if truck == domain.UnassignedLane {
					truck = "ej tilldelad"
				}
				fmt.Fprintf(&sb, "\n• %s %s: %s %s", day.Key, truck, entry.OrderNumber(), entry.ProjectName())
				if entry.Segment.JobType != "" {
					fmt.Fprintf(&sb, " (%s)", entry.Segment.JobType)
				}
			}
		}
	}
	if !found {
		sb.WriteString("\nInga jobb planerade.")
	}
	return sb.String()
}
