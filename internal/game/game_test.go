package game

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/dartboard/internal/board"
	"github.com/lox/dartboard/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func mustPlayer(t *testing.T, name string, skill int) Player {
	t.Helper()
	p, err := NewPlayer(name, skill)
	require.NoError(t, err)
	return p
}

func TestPerfectPlayerStandard(t *testing.T) {
	players := []Player{mustPlayer(t, "A", 10)}

	result, err := Play(context.Background(), players, 3, Standard,
		WithScale(3), WithSeed(1), WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.Equal(t, "A", result.Winner)
	score, ok := result.Scores.Score("A")
	require.True(t, ok)
	assert.Equal(t, 3.0, score)

	for _, th := range result.Throws {
		assert.Equal(t, board.Origin, th.Point)
		assert.True(t, th.Hit)
	}
	assert.Equal(t, Finished, result.State)
}

func TestPerfectPlayerDistance(t *testing.T) {
	players := []Player{mustPlayer(t, "A", 10)}

	result, err := Play(context.Background(), players, 4, Distance, WithScale(2.5), WithSeed(1))
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, 10.0, result.Records[0].Total)
	assert.Equal(t, 2.5, result.Records[0].Average)
}

func TestStandardScoresAreHitCounts(t *testing.T) {
	players := []Player{
		mustPlayer(t, "low", 1),
		mustPlayer(t, "mid", 5),
		mustPlayer(t, "high", 9),
	}
	const rounds = 25

	for seed := int64(0); seed < 10; seed++ {
		result, err := Play(context.Background(), players, rounds, Standard, WithScale(1), WithSeed(seed))
		require.NoError(t, err)

		for _, rec := range result.Records {
			assert.GreaterOrEqual(t, rec.Total, 0.0)
			assert.LessOrEqual(t, rec.Total, float64(rounds))
			assert.Equal(t, math.Trunc(rec.Total), rec.Total, "%s scored a fraction", rec.Name)
			assert.Equal(t, float64(rec.Hits), rec.Total)
		}
	}
}

func TestSinglePlayerAlwaysWins(t *testing.T) {
	for _, skill := range []int{1, 4, 10} {
		for _, mode := range []Mode{Distance, Standard} {
			players := []Player{mustPlayer(t, "solo", skill)}
			result, err := Play(context.Background(), players, 5, mode, WithSeed(int64(skill)))
			require.NoError(t, err)
			assert.Equal(t, "solo", result.Winner)
			assert.False(t, result.Tied())
		}
	}
}

func TestDistanceCanGoNegative(t *testing.T) {
	// skill 1 on scale 0.5: both offsets are 9/0.5 = 18
	players := []Player{mustPlayer(t, "wild", 1)}

	result, err := Play(context.Background(), players, 1, Distance,
		WithScale(0.5), WithSource(randutil.NewSequence(1.0, 1.0)))
	require.NoError(t, err)

	want := 0.5 - math.Hypot(18, 18)
	assert.InDelta(t, want, result.Records[0].Total, 1e-9)
	assert.Less(t, result.Records[0].Total, 0.0)
	assert.False(t, result.Throws[0].Hit)
}

func TestTieGoesToFirstEntered(t *testing.T) {
	players := []Player{
		mustPlayer(t, "first", 10),
		mustPlayer(t, "second", 10),
	}

	result, err := Play(context.Background(), players, 3, Standard, WithSeed(5))
	require.NoError(t, err)

	assert.Equal(t, "first", result.Winner)
	assert.True(t, result.Tied())
	assert.Equal(t, []string{"second"}, result.TiedWith())
}

func TestBetterPlayerWinsClearly(t *testing.T) {
	players := []Player{
		mustPlayer(t, "novice", 1),
		mustPlayer(t, "pro", 10),
	}

	result, err := Play(context.Background(), players, 50, Distance, WithScale(1), WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, "pro", result.Winner)
}

func TestThrowOrderIsRoundMajor(t *testing.T) {
	players := []Player{
		mustPlayer(t, "a", 3),
		mustPlayer(t, "b", 6),
	}

	result, err := Play(context.Background(), players, 2, Standard, WithSeed(3))
	require.NoError(t, err)

	require.Len(t, result.Throws, 4)
	order := []struct {
		round  int
		player string
	}{{1, "a"}, {1, "b"}, {2, "a"}, {2, "b"}}
	for i, want := range order {
		assert.Equal(t, want.round, result.Throws[i].Round)
		assert.Equal(t, want.player, result.Throws[i].Player)
	}
}

func TestGameIsDeterministicForSeed(t *testing.T) {
	players := []Player{mustPlayer(t, "a", 2), mustPlayer(t, "b", 7)}

	a, err := Play(context.Background(), players, 10, Distance, WithSeed(42))
	require.NoError(t, err)
	b, err := Play(context.Background(), players, 10, Distance, WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.Scores.Map(), b.Scores.Map())
	assert.Equal(t, a.Winner, b.Winner)
}

func TestFixedTarget(t *testing.T) {
	aim := board.Point{X: 2, Y: -1}
	players := []Player{mustPlayer(t, "a", 10)}

	result, err := Play(context.Background(), players, 3, Standard, WithTarget(aim), WithSeed(1))
	require.NoError(t, err)

	for _, th := range result.Throws {
		assert.Equal(t, aim, th.Point)
	}
	assert.Equal(t, 3.0, result.Records[0].Total)
}

func TestGameRendersBoardAndThrows(t *testing.T) {
	rec := &board.Recording{}
	players := []Player{mustPlayer(t, "a", 4), mustPlayer(t, "b", 8)}

	_, err := Play(context.Background(), players, 3, Standard, WithRenderer(rec), WithScale(2), WithSeed(1))
	require.NoError(t, err)

	require.Len(t, rec.Shapes, 4)
	assert.Equal(t, board.ShapeCircle, rec.Shapes[3].Kind)
	assert.Equal(t, 2.0, rec.Shapes[3].Size)
	require.Len(t, rec.Markers, 6)
	assert.Equal(t, "a", rec.Markers[0].Marker.Label)
	assert.Equal(t, "b", rec.Markers[1].Marker.Label)
}

func TestGameValidation(t *testing.T) {
	ok := []Player{{Name: "a", Skill: 5}}

	tests := []struct {
		name    string
		players []Player
		rounds  int
		mode    Mode
		opts    []Option
		wantErr error
	}{
		{"no players", nil, 1, Standard, nil, ErrNoPlayers},
		{"skill too low", []Player{{Name: "a", Skill: 0}}, 1, Standard, nil, ErrInvalidSkill},
		{"skill too high", []Player{{Name: "a", Skill: 11}}, 1, Standard, nil, ErrInvalidSkill},
		{"duplicate", []Player{{Name: "a", Skill: 5}, {Name: "a", Skill: 6}}, 1, Standard, nil, ErrDuplicatePlayer},
		{"duplicate after trim", []Player{{Name: "a", Skill: 5}, {Name: " a ", Skill: 6}}, 1, Standard, nil, ErrDuplicatePlayer},
		{"zero rounds", ok, 0, Standard, nil, ErrInvalidRounds},
		{"unknown mode", ok, 1, Mode(0), nil, ErrUnknownGameType},
		{"zero scale", ok, 1, Distance, []Option{WithScale(0)}, ErrInvalidScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.players, tt.rounds, tt.mode, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGamePlaysOnce(t *testing.T) {
	g, err := New([]Player{{Name: "a", Skill: 5}}, 1, Standard, WithID("fixed"), WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, "fixed", g.ID())
	assert.Equal(t, NotStarted, g.State())

	result, err := g.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fixed", result.ID)
	assert.Equal(t, Finished, g.State())

	_, err = g.Play(context.Background())
	assert.Error(t, err)
}

func TestGameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Play(ctx, []Player{{Name: "a", Skill: 5}}, 3, Standard, WithSeed(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGeneratedID(t *testing.T) {
	g, err := New([]Player{{Name: "a", Skill: 5}}, 1, Standard)
	require.NoError(t, err)
	assert.Len(t, g.ID(), 8)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"DISTANCE", Distance, false},
		{"distance", Distance, false},
		{"STANDARD", Standard, false},
		{"DDSTANDARD", Standard, false},
		{" standard ", Standard, false},
		{"cricket", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownGameType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "DISTANCE", Distance.String())
	assert.Equal(t, "STANDARD", Standard.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestPlayerNamesAreTrimmed(t *testing.T) {
	players := []Player{{Name: "  Ann ", Skill: 10}, {Name: "Ben", Skill: 10}}

	result, err := Play(context.Background(), players, 1, Standard, WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ann", "Ben"}, result.Scores.Names())
	assert.Equal(t, "Ann", result.Throws[0].Player)
	assert.Equal(t, "  Ann ", players[0].Name, "caller's slice is left alone")
}
