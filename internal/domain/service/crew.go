package service

import (
	"context"
	"strconv"
	"time"

	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/patrickmn/go-cache"
)

// ResolveCrew returns the crew running truckID on day. Among the assignments
// covering the day the most recently created wins, ties broken by the higher
// id. A slot's name override wins over the directory name of its id.
func ResolveCrew(assignments []*entity.TruckAssignment, truckID string, day time.Time, names map[int64]string) entity.Crew {
	winner := coveringAssignment(assignments, truckID, day)
	if winner == nil {
		return entity.Crew{}
	}
	return entity.Crew{
		Member1: slotName(winner.Team1ID, winner.Team1Name, names),
		Member2: slotName(winner.Team2ID, winner.Team2Name, names),
	}
}

func coveringAssignment(assignments []*entity.TruckAssignment, truckID string, day time.Time) *entity.TruckAssignment {
	var winner *entity.TruckAssignment
	for _, a := range assignments {
		if a.TruckID != truckID || !a.Covers(day) {
			continue
		}
		if winner == nil || newerAssignment(a, winner) {
			winner = a
		}
	}
	return winner
}

func newerAssignment(a, b *entity.TruckAssignment) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func slotName(id *int64, override string, names map[int64]string) string {
	if override != "" || id == nil {
		return override
	}
	return names[*id]
}

// crewDirectory resolves crew member names through a short lived cache.
type crewDirectory struct {
	dm    contract.DataManager
	cache *cache.Cache
}

// NewCrewDirectory returns a CrewDirectory backed by the crew table. Names,
// including misses, are cached for ttl.
func NewCrewDirectory(dm contract.DataManager, ttl time.Duration) contract.CrewDirectory {
	return &crewDirectory{
		dm:    dm,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (d *crewDirectory) NameOf(ctx context.Context, id int64) (string, error) {
	key := strconv.FormatInt(id, 10)
	if name, found := d.cache.Get(key); found {
		return name.(string), nil
	}

	member, err := d.dm.Crew().GetByID(ctx, id)
	if err != nil {
		return "", domain.NewPersistenceError("get crew member", err, map[string]any{"id": id})
	}

	var name string
	if member != nil {
		name = member.Name
	}
	d.cache.SetDefault(key, name)
	return name, nil
}

// resolveNames looks up every directory id referenced by assignments.
func resolveNames(ctx context.Context, dir contract.CrewDirectory, assignments []*entity.TruckAssignment) (map[int64]string, error) {
	names := make(map[int64]string)
	lookup := func(id *int64) error {
		if id == nil {
			return nil
		}
		if _, ok := names[*id]; ok {
			return nil
		}
		name, err := dir.NameOf(ctx, *id)
		if err != nil {
			return err
		}
		names[*id] = name
		return nil
	}
	for _, a := range assignments {
		if err := lookup(a.Team1ID); err != nil {
			return nil, err
		}
		if err := lookup(a.Team2ID); err != nil {
			return nil, err
		}
	}
	return names, nil
}
