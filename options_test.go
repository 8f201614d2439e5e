package widgets

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	o := applyOptions([]Option{
		WithSelectionMode(CellMultiple),
		WithMaxTextLength(64),
		ReadOnly(),
	})

	assert.Equal(t, CellMultiple, GetOpt(o, OptSelectionMode))
	assert.Equal(t, 64, GetOpt(o, OptMaxTextLength))
	assert.True(t, GetOpt(o, OptReadOnly))
	assert.True(t, GetOpt(o, OptWordWrap), "unset keys give their default")
	assert.Equal(t, DefaultUndoLimit, GetOpt(o, OptUndoLimit))

	assert.True(t, HasOpt(o, OptMaxTextLength))
	assert.False(t, HasOpt(o, OptHeader))
	assert.Nil(t, GetOpt(o, OptHeader))
	assert.Equal(t, "maxTextLength", OptMaxTextLength.Name())

	custom := NewOptKey("custom", 3)
	assert.Equal(t, 3, GetOpt(applyOptions(nil), custom))
	assert.Equal(t, 9, GetOpt(applyOptions([]Option{WithOpt(custom, 9)}), custom))
}

func TestVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() {
		SetLogOutput(os.Stderr)
		SetVerbose(false)
	})

	l := NewMultiColumnList()
	l.AddColumn("quiet", 1, 40)
	assert.Empty(t, buf.String(), "debug records are dropped by default")

	SetVerbose(true)
	l.AddColumn("loud", 2, 40)
	assert.Contains(t, buf.String(), "column inserted")
	assert.Contains(t, buf.String(), "widget=multicolumnlist")

	buf.Reset()
	e, err := NewMultiLineEditbox(NewCellFont(1, 1))
	assert.NoError(t, err)
	e.SetText("hello")
	assert.Contains(t, buf.String(), "widget=multilineeditbox")
}

func TestInputModifiers(t *testing.T) {
	m := ModCtrl | ModShift
	assert.True(t, m.Has(ModCtrl))
	assert.True(t, m.Has(ModCtrl|ModShift))
	assert.False(t, m.Has(ModAlt))
	assert.Equal(t, "PageDown", KeyPageDown.String())
	assert.Equal(t, "RowMultiple", RowMultiple.String())
}
