package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/flipword/api/internal/model"
)

var passport = model.Word{En: "passport", Zh: "護照", Pos: "n.", EnSent: "Bring your passport.", ZhSent: "帶上你的護照。"}

func TestImportWords_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	content := "en,zh,pos,enSent,zhSent\n" +
		" passport ,護照,n.,Bring your passport.,帶上你的護照。\n" +
		",,,,\n" +
		"luggage,行李\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ImportWords(Config{FilePath: path, SkipHeader: true})
	require.NoError(t, err)

	assert.Equal(t, []model.Word{passport}, got.Words)
	assert.Equal(t, 1, got.Skipped)
	assert.Equal(t, []string{"row 4: expected 5 columns, got 2"}, got.Errors)
}

func TestImportWords_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"en", "zh", "pos", "enSent", "zhSent"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{passport.En, passport.Zh, passport.Pos, passport.EnSent, passport.ZhSent}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := ImportWords(Config{FilePath: path, SkipHeader: true})
	require.NoError(t, err)

	assert.Equal(t, []model.Word{passport}, got.Words)
	assert.Zero(t, got.Skipped)
}

func TestImportWords_UnsupportedType(t *testing.T) {
	_, err := ImportWords(Config{FilePath: "words.txt"})
	assert.ErrorContains(t, err, "unsupported file type")
}
