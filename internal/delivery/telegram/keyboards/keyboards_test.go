package keyboards

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shift-tracker/internal/model"
)

func TestShiftListCaps(t *testing.T) {
	var shifts []model.Shift
	for i := 0; i < MaxListed+5; i++ {
		shifts = append(shifts, model.Shift{ID: fmt.Sprint(i), Date: "2024-03-05", Location: "Bar"})
	}
	markup := ShiftList(shifts)
	require.Len(t, markup.InlineKeyboard, MaxListed)
	assert.Equal(t, Open, markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "0", markup.InlineKeyboard[0][0].Data)
}

func TestShiftCardRemovalButtons(t *testing.T) {
	s := model.Shift{
		ID:        "abc",
		Coworkers: []model.Coworker{{Name: "Sam"}, {Name: "Lee"}},
		Parties:   []model.Party{{Name: "Gala"}},
	}
	rows := ShiftCard(s).InlineKeyboard
	require.Len(t, rows, 6)
	assert.Equal(t, DropCoworker, rows[3][0].Unique)
	assert.Equal(t, "abc|1", rows[3][0].Data)
	assert.Equal(t, DropParty, rows[4][0].Unique)
	assert.Equal(t, Delete, rows[5][0].Unique)
}

func TestConfirmDelete(t *testing.T) {
	row := ConfirmDelete("abc").InlineKeyboard[0]
	assert.Equal(t, ConfirmDel, row[0].Unique)
	assert.Equal(t, "abc", row[0].Data)
	assert.Equal(t, Open, row[1].Unique)
}

func TestEditFields(t *testing.T) {
	rows := EditFields("abc").InlineKeyboard
	require.Len(t, rows, 5, "seven fields in pairs plus Back")
	assert.Equal(t, "abc|date", rows[0][0].Data)
	assert.Equal(t, "Back", rows[4][0].Text)
}
