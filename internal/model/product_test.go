package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(action Action, qty int, serials []string, actor string) HistoryEvent {
	if serials == nil {
		serials = []string{}
	}
	return HistoryEvent{
		Action:   action,
		Quantity: qty,
		Serials:  serials,
		Date:     Now(),
		Actor:    actor,
	}
}

func TestApplyInKeepsQuantityEqualToSerialCount(t *testing.T) {
	p := &Product{Name: "Phone X", Serials: []string{}}

	require.NoError(t, p.ApplyIn(event(ActionIn, 2, []string{"IMEI1", "IMEI2"}, "alice")))
	assert.Equal(t, 2, p.Quantity)
	assert.Len(t, p.Serials, p.Quantity)

	require.NoError(t, p.ApplyIn(event(ActionIn, 1, []string{"IMEI3"}, "alice")))
	assert.Equal(t, 3, p.Quantity)
	assert.Len(t, p.Serials, p.Quantity)

	require.NoError(t, p.ApplyOut(event(ActionOut, 2, []string{"IMEI1", "IMEI3"}, "bob")))
	assert.Equal(t, 1, p.Quantity)
	assert.Equal(t, []string{"IMEI2"}, p.Serials)
}

func TestApplyInRejectsDuplicateSerials(t *testing.T) {
	p := &Product{Name: "Phone X", Serials: []string{}}
	require.NoError(t, p.ApplyIn(event(ActionIn, 1, []string{"IMEI1"}, "alice")))

	err := p.ApplyIn(event(ActionIn, 1, []string{"IMEI1"}, "alice"))
	var conflict *SerialConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"IMEI1"}, conflict.Serials)
	assert.Equal(t, 1, p.Quantity)
	assert.Len(t, p.History, 1)
}

func TestApplyInRejectsDuplicateWithinEvent(t *testing.T) {
	p := &Product{Name: "Phone X", Serials: []string{}}
	err := p.ApplyIn(event(ActionIn, 2, []string{"IMEI1", "IMEI1"}, "alice"))
	var conflict *SerialConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 0, p.Quantity)
}

func TestApplyInValidation(t *testing.T) {
	tests := []struct {
		name string
		ev   HistoryEvent
		want error
	}{
		{"zero quantity", event(ActionIn, 0, nil, "alice"), ErrInvalidInput},
		{"negative quantity", event(ActionIn, -3, nil, "alice"), ErrInvalidInput},
		{"serial count mismatch", event(ActionIn, 3, []string{"A"}, "alice"), ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Name: "Cable", Serials: []string{}}
			assert.ErrorIs(t, p.ApplyIn(tt.ev), tt.want)
			assert.Equal(t, 0, p.Quantity)
			assert.Empty(t, p.History)
		})
	}
}

func TestTrackingModeIsFixedForLife(t *testing.T) {
	serialed := &Product{Name: "Phone X", Serials: []string{}}
	require.NoError(t, serialed.ApplyIn(event(ActionIn, 1, []string{"IMEI1"}, "alice")))
	assert.ErrorIs(t, serialed.ApplyIn(event(ActionIn, 1, nil, "alice")), ErrModeMismatch)

	plain := &Product{Name: "Cable", Serials: []string{}}
	require.NoError(t, plain.ApplyIn(event(ActionIn, 5, nil, "alice")))
	assert.ErrorIs(t, plain.ApplyIn(event(ActionIn, 1, []string{"IMEI1"}, "alice")), ErrModeMismatch)
	assert.ErrorIs(t, plain.ApplyOut(event(ActionOut, 1, []string{"IMEI1"}, "alice")), ErrModeMismatch)
}

func TestModeSurvivesZeroQuantity(t *testing.T) {
	p := &Product{Name: "Phone X", Serials: []string{}}
	require.NoError(t, p.ApplyIn(event(ActionIn, 1, []string{"IMEI1"}, "alice")))
	require.NoError(t, p.ApplyOut(event(ActionOut, 1, []string{"IMEI1"}, "bob")))

	assert.Equal(t, 0, p.Quantity)
	assert.Empty(t, p.Serials)
	// Even with the serial set drained, the product stays serial-tracked.
	assert.True(t, p.SerialTracked())
	assert.ErrorIs(t, p.ApplyIn(event(ActionIn, 2, nil, "alice")), ErrModeMismatch)
}

func TestApplyOutRejectsExcessQuantity(t *testing.T) {
	p := &Product{Name: "Cable", Serials: []string{}}
	require.NoError(t, p.ApplyIn(event(ActionIn, 10, nil, "alice")))

	err := p.ApplyOut(event(ActionOut, 15, nil, "alice"))
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 10, p.Quantity)
	assert.Len(t, p.History, 1)
}

func TestApplyOutRejectsUnknownSerials(t *testing.T) {
	p := &Product{Name: "Phone X", Serials: []string{}}
	require.NoError(t, p.ApplyIn(event(ActionIn, 2, []string{"IMEI1", "IMEI2"}, "alice")))

	err := p.ApplyOut(event(ActionOut, 2, []string{"IMEI1", "IMEI9"}, "bob"))
	var missing *SerialNotFoundError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"IMEI9"}, missing.Serials)
	assert.Equal(t, 2, p.Quantity)
	assert.Equal(t, []string{"IMEI1", "IMEI2"}, p.Serials)
	assert.Len(t, p.History, 1)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	p := &Product{Name: "Phone X", Serials: []string{}}
	require.NoError(t, p.ApplyIn(event(ActionIn, 2, []string{"IMEI1", "IMEI2"}, "alice")))

	before := append([]string{}, p.Serials...)
	require.NoError(t, p.ApplyIn(event(ActionIn, 2, []string{"IMEI3", "IMEI4"}, "alice")))
	require.NoError(t, p.ApplyOut(event(ActionOut, 2, []string{"IMEI3", "IMEI4"}, "alice")))

	assert.Equal(t, 2, p.Quantity)
	assert.ElementsMatch(t, before, p.Serials)
}

func TestReplayReproducesCurrentState(t *testing.T) {
	p := &Product{Name: "Phone X", Serials: []string{}}
	require.NoError(t, p.ApplyIn(event(ActionIn, 3, []string{"A", "B", "C"}, "alice")))
	require.NoError(t, p.ApplyOut(event(ActionOut, 1, []string{"B"}, "bob")))
	require.NoError(t, p.ApplyIn(event(ActionIn, 2, []string{"D", "E"}, "alice")))
	require.NoError(t, p.ApplyOut(event(ActionOut, 2, []string{"A", "D"}, "carol")))

	replayed, err := Replay(p.Name, p.History)
	require.NoError(t, err)
	assert.Equal(t, p.Quantity, replayed.Quantity)
	assert.Equal(t, p.Serials, replayed.Serials)
}

func TestTimestampFormat(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 3, 7, 9, 5, 2, 0, time.Local))
	data, err := ts.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-07 09:05:02"`, string(data))

	var parsed Timestamp
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.True(t, parsed.Equal(ts.Time))
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local), parsed.Day())
}
