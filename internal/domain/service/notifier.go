package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/diegoclair/crew-planner/internal/logger"
	"github.com/slack-go/slack"
)

// RosterSchedule says when and where the weekly crew roster is posted.
type RosterSchedule struct {
	ChannelID string
	Weekday   int    // ISO weekday
	Time      string // HH:MM in Location
	Location  *time.Location
}

type rosterNotifier struct {
	view        contract.ViewService
	slackClient contract.SlackClient
	schedule    RosterSchedule
	log         logger.Logger
	now         func() time.Time

	mu       sync.Mutex
	stopChan chan struct{}
	running  bool
}

func NewRosterNotifier(view contract.ViewService, slackClient contract.SlackClient, schedule RosterSchedule, log logger.Logger) *rosterNotifier {
	if schedule.Location == nil {
		schedule.Location = time.UTC
	}
	return &rosterNotifier{
		view:        view,
		slackClient: slackClient,
		schedule:    schedule,
		log:         log,
		now:         time.Now,
	}
}

func (n *rosterNotifier) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.running {
		return
	}
	n.running = true
	n.stopChan = make(chan struct{})
	n.log.Infof("Roster notifier starting for channel %s", n.schedule.ChannelID)
	go n.mainLoop(n.stopChan)
}

func (n *rosterNotifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.running {
		return
	}
	n.log.Infof("Roster notifier stopping...")
	close(n.stopChan)
	n.running = false
}

func (n *rosterNotifier) mainLoop(stop <-chan struct{}) {
	for {
		next, err := n.nextRun(n.now())
		if err != nil {
			n.log.Errorf("Roster notifier disabled: %v", err)
			return
		}

		n.log.Infof("Next roster at %s", next.Format(time.RFC3339))
		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := n.SendRoster(ctx); err != nil {
				n.log.Errorf("Failed to send roster: %v", err)
			}
			cancel()

		case <-stop:
			timer.Stop()
			return
		}
	}
}

// nextRun returns the first configured weekday and time strictly after now.
func (n *rosterNotifier) nextRun(now time.Time) (time.Time, error) {
	hour, minute, err := parseClock(n.schedule.Time)
	if err != nil {
		return time.Time{}, err
	}
	if n.schedule.Weekday < domain.Monday || n.schedule.Weekday > domain.Sunday {
		return time.Time{}, fmt.Errorf("invalid roster weekday %d", n.schedule.Weekday)
	}

	local := now.In(n.schedule.Location)
	today := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, n.schedule.Location)

	for i := 0; i <= 7; i++ {
		candidate := today.AddDate(0, 0, i)
		if calendar.ISOWeekday(candidate) == n.schedule.Weekday && candidate.After(now) {
			return candidate, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not find next roster time")
}

// SendRoster posts the crews of the current week.
func (n *rosterNotifier) SendRoster(ctx context.Context) error {
	key := calendar.ISOWeekKey(n.now().In(n.schedule.Location))
	board, err := n.view.Week(ctx, key, contract.Filter{})
	if err != nil {
		return fmt.Errorf("failed to load week %s: %w", key, err)
	}

	_, _, err = n.slackClient.PostMessage(
		n.schedule.ChannelID,
		slack.MsgOptionText(RosterMessage(board), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	n.log.Infow("roster sent", map[string]any{"channel": n.schedule.ChannelID, "week": key})
	return nil
}

// RosterMessage renders the crews of a board's workdays per truck. Consecutive
// days with the same crew are grouped.
func RosterMessage(board *entity.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🚚 *Bemanning %s*\n", board.Title)

	type run struct {
		crew     entity.Crew
		from, to calendar.Day
	}

	var trucks []string
	runs := make(map[string][]run)
	for _, day := range board.Days {
		if !calendar.IsWorkday(day.Date) {
			continue
		}
		for _, lane := range day.Lanes {
			if lane.Truck == domain.UnassignedLane {
				continue
			}
			rs, seen := runs[lane.Truck]
			if !seen {
				trucks = append(trucks, lane.Truck)
			}
			if len(rs) > 0 && rs[len(rs)-1].crew == lane.Crew {
				rs[len(rs)-1].to = day.Day
			} else {
				rs = append(rs, run{crew: lane.Crew, from: day.Day, to: day.Day})
			}
			runs[lane.Truck] = rs
		}
	}

	if len(trucks) == 0 {
		sb.WriteString("\nInga bilar planerade.")
		return sb.String()
	}

	for _, truck := range trucks {
		rs := runs[truck]
		if len(rs) == 1 {
			fmt.Fprintf(&sb, "\n• *%s*: %s", truck, CrewText(rs[0].crew))
			continue
		}
		parts := make([]string, 0, len(rs))
		for _, r := range rs {
			parts = append(parts, fmt.Sprintf("%s (%s)", CrewText(r.crew), dayRangeText(r.from, r.to)))
		}
		fmt.Fprintf(&sb, "\n• *%s*: %s", truck, strings.Join(parts, ", "))
	}
	return sb.String()
}

// CrewText renders a crew for chat messages.
func CrewText(c entity.Crew) string {
	switch {
	case c.Empty():
		return "ingen bemanning"
	case c.Member1 == "":
		return c.Member2
	case c.Member2 == "":
		return c.Member1
	}
	return c.Member1 + " & " + c.Member2
}

func dayRangeText(from, to calendar.Day) string {
	short := func(d calendar.Day) string {
		name := []rune(domain.WeekdayNames[calendar.ISOWeekday(d.Date)])
		return string(name[:3])
	}
	if from.Key == to.Key {
		return short(from)
	}
	return short(from) + "–" + short(to)
}

func parseClock(value string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(value, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", value)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}
