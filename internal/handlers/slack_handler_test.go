package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/diegoclair/crew-planner/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	return response
}

func weekBoard(t *testing.T) *entity.Board {
	t.Helper()
	days, err := calendar.WeekDays("2025-W02")
	require.NoError(t, err)

	board := &entity.Board{Title: "Vecka 2, 2025"}
	for i, day := range days {
		lane := &entity.Lane{Truck: "T1", Crew: entity.Crew{Member1: "Anna", Member2: "Bo"}, Entries: []*entity.LaneEntry{}}
		if i == 2 {
			lane.Entries = append(lane.Entries, &entity.LaneEntry{
				Segment: &entity.ScheduledSegment{ID: 1, SegmentID: "s1", ProjectID: 7, Day: day.Date, JobType: domain.JobTypeInstall},
				Project: &entity.Project{ID: 7, Name: "Villa Lindgren", OrderNumber: "101"},
			})
		}
		board.Days = append(board.Days, &entity.BoardDay{Day: day, Lanes: []*entity.Lane{lane}})
	}
	return board
}

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	type args struct {
		text          string
		signingSecret string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should show the crew of a truck today",
			args: args{text: "crew T1"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.ViewServiceMock.EXPECT().
					Crew(gomock.Any(), "T1", calendar.Date(2025, 1, 8)).
					Return(entity.Crew{Member1: "Anna", Member2: "Bo"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, "🚚 *T1* 2025-01-08: Anna & Bo", msg.Text)
			},
		},
		{
			name: "Should show the crew of a truck on a given day",
			args: args{text: "bemanning T2 2025-01-10"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.ViewServiceMock.EXPECT().
					Crew(gomock.Any(), "T2", calendar.Date(2025, 1, 10)).
					Return(entity.Crew{}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, "🚚 *T2* 2025-01-10: ingen bemanning", msg.Text)
			},
		},
		{
			name: "Should ask for a truck",
			args: args{text: "crew"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "❌ Ange en bil")
			},
		},
		{
			name: "Should reject a malformed date",
			args: args{text: "crew T1 10/01/2025"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "❌ Ogiltigt datum")
			},
		},
		{
			name: "Should hide storage failures behind a generic message",
			args: args{text: "crew T1"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.ViewServiceMock.EXPECT().
					Crew(gomock.Any(), "T1", calendar.Date(2025, 1, 8)).
					Return(entity.Crew{}, domain.NewPersistenceError("load assignments", errors.New("database is locked"), nil)).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, "❌ Kunde inte hämta bemanning, försök igen om en stund", msg.Text)
				assert.NotContains(t, msg.Text, "locked")
			},
		},
		{
			name: "Should show the current week",
			args: args{text: "week"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.ViewServiceMock.EXPECT().
					Week(gomock.Any(), "2025-W02", contract.Filter{}).
					Return(weekBoard(t), nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "🚚 *Bemanning Vecka 2, 2025*")
				assert.Contains(t, msg.Text, "• *T1*: Anna & Bo")
				assert.Contains(t, msg.Text, "• 2025-01-08 T1: 101 Villa Lindgren (Installation)")
			},
		},
		{
			name: "Should resolve a day to its week",
			args: args{text: "vecka 2025-03-05"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.ViewServiceMock.EXPECT().
					Week(gomock.Any(), "2025-W10", contract.Filter{}).
					Return(&entity.Board{Title: "Vecka 10, 2025"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "Inga bilar planerade.")
				assert.Contains(t, msg.Text, "Inga jobb planerade.")
			},
		},
		{
			name: "Should reject a malformed week",
			args: args{text: "week 2025-W60"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "❌ Ogiltig vecka")
			},
		},
		{
			name: "Should list holidays of a year",
			args: args{text: "helgdagar 2025"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "*Helgdagar 2025:*")
				assert.Contains(t, msg.Text, "• 2025-04-18 Långfredagen")
				assert.Contains(t, msg.Text, "• 2025-06-21 Midsommardagen")
			},
		},
		{
			name: "Should reject an out of range year",
			args: args{text: "holidays 1200"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "❌ Ogiltigt år")
			},
		},
		{
			name: "Should show bag usage with overrun",
			args: args{text: "bags 7"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.BagServiceMock.EXPECT().
					ProjectStatus(gomock.Any(), int64(7)).
					Return(&entity.BagUsageStatus{Plan: 40, Used: 45, Overrun: 5}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, "📦 Projekt 7: plan 40, använt 45, kvar 0, ⚠️ överdrag 5", msg.Text)
			},
		},
		{
			name: "Should say when a project has no bag plan",
			args: args{text: "säckar 7"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.BagServiceMock.EXPECT().
					ProjectStatus(gomock.Any(), int64(7)).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, "Projekt 7 har ingen säckplan.", msg.Text)
			},
		},
		{
			name: "Should report an unknown project",
			args: args{text: "bags 99"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.BagServiceMock.EXPECT().
					ProjectStatus(gomock.Any(), int64(99)).
					Return(nil, domain.ErrNotFound).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, "❌ Kunde inte hämta säckstatus: hittades inte", msg.Text)
			},
		},
		{
			name: "Should reject a malformed project id",
			args: args{text: "bags abc"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "❌ Ogiltigt projekt-id")
			},
		},
		{
			name: "Should show help message",
			args: args{text: "help"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "*Tillgängliga kommandon:*")
				assert.Contains(t, msg.Text, "/planering crew")
			},
		},
		{
			name: "Should show help on empty text",
			args: args{text: ""},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Contains(t, msg.Text, "*Tillgängliga kommandon:*")
			},
		},
		{
			name: "Should reject an unknown command",
			args: args{text: "deploy"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				msg := decodeMsg(t, resp)
				assert.Equal(t, "❌ okänt kommando: deploy", msg.Text)
			},
		},
		{
			name: "Should reject a bad signature",
			args: args{text: "help", signingSecret: "wrong-secret"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, resp.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m)
			}

			secret := tt.args.signingSecret
			if secret == "" {
				secret = test.SigningSecret
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, "/planering", tt.args.text, "C123456789", "U987654321", secret)

			handler.HandleSlashCommand(recorder, req)

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
		})
	}
}
