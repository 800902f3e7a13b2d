package recorder

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/piwi3910/LightLine/internal/engine"
	"github.com/piwi3910/LightLine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(opts ...Option) (*Recorder, *[]Commit) {
	var commits []Commit
	base := []Option{
		WithScale(1),
		WithLogger(log.New(io.Discard, "", 0)),
		WithClock(func() time.Time { return time.UnixMilli(1000) }),
		WithCommitHandler(func(c Commit) { commits = append(commits, c) }),
	}
	return New(NewStore(), append(base, opts...)...), &commits
}

// ─── Mode Tests ───────────────────────────────────────────

func TestModeString(t *testing.T) {
	assert.Equal(t, "idle", ModeIdle.String())
	assert.Equal(t, "awaiting-second-point", ModeAwaitingSecondPoint.String())
	assert.Equal(t, "placing-power-supply", ModePlacingPowerSupply.String())
	assert.True(t, ModeFreehand.Drawing())
	assert.False(t, ModePlacingController.Drawing())
	assert.True(t, ModePlacingController.Placing())
}

// ─── Straight Mode Tests ─────────────────────────────────

func TestStraight_TwoClicksCommit(t *testing.T) {
	r, commits := newTestRecorder()

	r.PointerDown(0, 0)
	assert.Equal(t, ModeAwaitingSecondPoint, r.Mode())
	assert.Equal(t, 0, r.Store().Len())

	r.PointerDown(3, 4)
	assert.Equal(t, ModeIdle, r.Mode())
	require.Equal(t, 1, r.Store().Len())
	require.Len(t, *commits, 1)

	c := (*commits)[0]
	assert.Equal(t, model.SideFront, c.Side)
	assert.Equal(t, 5.0, c.RealLength)
	assert.Len(t, c.Path.Points, 2)
	assert.Equal(t, int64(1000), c.Path.Points[0].Timestamp)
	assert.Empty(t, r.InProgress())
}

func TestStraight_MoveAndUpIgnored(t *testing.T) {
	r, commits := newTestRecorder()

	r.PointerDown(0, 0)
	r.PointerMove(5, 5)
	r.PointerUp()
	r.PointerLeave()

	assert.Equal(t, ModeAwaitingSecondPoint, r.Mode())
	assert.Len(t, r.InProgress(), 1)
	assert.Empty(t, *commits)
}

func TestStraight_ClickAfterCommitStartsNewPath(t *testing.T) {
	r, _ := newTestRecorder()

	r.PointerDown(0, 0)
	r.PointerDown(10, 0)
	r.PointerDown(20, 0)

	assert.Equal(t, ModeAwaitingSecondPoint, r.Mode())
	assert.Equal(t, 1, r.Store().Len())
}

// ─── Freehand Mode Tests ─────────────────────────────────

func TestFreehand_EveryMoveIsAPoint(t *testing.T) {
	r, commits := newTestRecorder()
	r.SetDrawingMode(model.DrawingFreehand)

	r.PointerDown(0, 0)
	assert.Equal(t, ModeFreehand, r.Mode())
	r.PointerMove(1, 0)
	r.PointerMove(1, 0) // duplicates are kept
	r.PointerMove(2, 0)
	r.PointerUp()

	assert.Equal(t, ModeIdle, r.Mode())
	require.Len(t, *commits, 1)
	assert.Len(t, (*commits)[0].Path.Points, 4)
	assert.Equal(t, 2.0, (*commits)[0].RealLength)
}

func TestFreehand_SinglePointDiscarded(t *testing.T) {
	r, commits := newTestRecorder()
	r.SetDrawingMode(model.DrawingFreehand)

	r.PointerDown(5, 5)
	r.PointerUp()

	assert.Equal(t, ModeIdle, r.Mode())
	assert.Empty(t, *commits)
	assert.Equal(t, 0, r.Store().Len())
}

func TestFreehand_LeaveCommits(t *testing.T) {
	r, commits := newTestRecorder()
	r.SetDrawingMode(model.DrawingFreehand)

	r.PointerDown(0, 0)
	r.PointerMove(0, 6)
	r.PointerLeave()

	assert.Equal(t, ModeIdle, r.Mode())
	assert.Len(t, *commits, 1)
}

func TestFreehand_LengthNeverShrinks(t *testing.T) {
	r, commits := newTestRecorder()
	r.SetDrawingMode(model.DrawingFreehand)

	moves := [][2]float64{
		{3, 4}, {3, 4}, {0, 0}, {0, 0}, {-2.5, 0.25}, {10, 10}, {10, 10}, {9.99, 10}, {3, 4},
	}

	r.PointerDown(0, 0)
	prev := engine.PathLength(r.InProgress(), 1)
	for i, m := range moves {
		r.PointerMove(m[0], m[1])
		length := engine.PathLength(r.InProgress(), 1)
		assert.GreaterOrEqual(t, length, prev, "move %d to %v", i, m)
		prev = length
	}
	r.PointerUp()

	require.Len(t, *commits, 1)
	assert.Equal(t, prev, (*commits)[0].RealLength)
}

func TestFreehand_MoveWhileIdleIgnored(t *testing.T) {
	r, _ := newTestRecorder()
	r.SetDrawingMode(model.DrawingFreehand)

	r.PointerMove(1, 1)
	assert.Equal(t, ModeIdle, r.Mode())
	assert.Empty(t, r.InProgress())
}

// ─── Selector Tests ──────────────────────────────────────

func TestSetDrawingMode_ResetsStroke(t *testing.T) {
	r, commits := newTestRecorder()

	r.PointerDown(0, 0)
	r.SetDrawingMode(model.DrawingFreehand)

	assert.Equal(t, ModeIdle, r.Mode())
	assert.Empty(t, r.InProgress())
	assert.Empty(t, *commits)
}

func TestSetSide_TagsNextCommit(t *testing.T) {
	r, commits := newTestRecorder()

	r.PointerDown(0, 0)
	r.SetSide(model.SideBack)
	r.PointerDown(0, 4)

	require.Len(t, *commits, 1)
	assert.Equal(t, model.SideBack, (*commits)[0].Side)
	assert.Equal(t, 4.0, r.Store().Totals(1).Back)
}

func TestSetScale_AffectsEmittedLength(t *testing.T) {
	r, commits := newTestRecorder()
	r.SetScale(0.5)

	r.PointerDown(0, 0)
	r.PointerDown(0, 10)

	require.Len(t, *commits, 1)
	assert.Equal(t, 5.0, (*commits)[0].RealLength)
}

// ─── Fixture Tests ───────────────────────────────────────

func TestFixturePlacement(t *testing.T) {
	r, commits := newTestRecorder()

	r.BeginControllerPlacement()
	assert.Equal(t, ModePlacingController, r.Mode())
	r.PointerDown(10, 10)
	assert.Equal(t, ModeIdle, r.Mode())

	r.BeginPowerSupplyPlacement()
	r.PointerDown(20, 20)

	r.BeginControllerPlacement()
	r.PointerDown(30, 30)

	fixtures := r.Fixtures()
	require.Len(t, fixtures, 2)
	assert.Equal(t, model.FixtureController, fixtures[0].Kind)
	assert.Equal(t, 30.0, fixtures[0].Point.X)
	assert.Empty(t, *commits)
	assert.Equal(t, 0, r.Store().Len())
}

func TestCancelPlacement(t *testing.T) {
	r, _ := newTestRecorder()

	r.BeginPowerSupplyPlacement()
	r.CancelPlacement()
	r.PointerDown(1, 1)

	assert.Empty(t, r.Fixtures())
	assert.Equal(t, ModeAwaitingSecondPoint, r.Mode())
}

func TestCancelDropsStrokeKeepsPaths(t *testing.T) {
	r, _ := newTestRecorder()
	r.PointerDown(0, 0)
	r.PointerDown(8, 0)
	r.PointerDown(16, 0)

	r.Cancel()

	assert.Equal(t, ModeIdle, r.Mode())
	assert.Empty(t, r.InProgress())
	assert.Equal(t, 1, r.Store().Len())
}

// ─── Clear / Restore Tests ───────────────────────────────

func TestEndToEnd_FrontTotalThenClear(t *testing.T) {
	r, _ := newTestRecorder()
	r.SetSide(model.SideFront)

	r.PointerDown(0, 0)
	r.PointerDown(0, 10)
	r.PointerDown(0, 10)
	r.PointerDown(0, 25)

	assert.Equal(t, 25.0, r.Store().Totals(1).Front)
	assert.Equal(t, 25.0, r.Store().Totals(1).Grand())

	r.Clear()
	assert.Equal(t, 0.0, r.Store().Totals(1).Front)
	assert.Equal(t, 0, r.Store().Len())
	assert.Equal(t, ModeIdle, r.Mode())
}

func TestClear_DropsStrokeAndFixtures(t *testing.T) {
	r, _ := newTestRecorder()

	r.BeginControllerPlacement()
	r.PointerDown(5, 5)
	r.PointerDown(0, 0)
	r.Clear()

	assert.Empty(t, r.Fixtures())
	assert.Empty(t, r.InProgress())
	assert.Equal(t, ModeIdle, r.Mode())
}

func TestRestore(t *testing.T) {
	r, commits := newTestRecorder()
	r.PointerDown(0, 0)
	r.PointerDown(1, 0)

	paths := []model.Path{
		model.NewPath(model.SideLeft, []model.Point{{X: 0, Y: 0}, {X: 0, Y: 7}}),
		model.NewPath(model.SideLeft, []model.Point{{X: 0, Y: 0}}),
	}
	fixtures := []model.Fixture{{Kind: model.FixturePowerSupply, Point: model.Point{X: 2, Y: 2}}}

	n := r.Restore(paths, fixtures)

	assert.Equal(t, 1, n)
	assert.Equal(t, 1, r.Store().Len())
	assert.Equal(t, 7.0, r.Store().Totals(1).Left)
	assert.Equal(t, 0.0, r.Store().Totals(1).Front)
	assert.Len(t, r.Fixtures(), 1)
	assert.Len(t, *commits, 1, "restore should not emit commits")
}
