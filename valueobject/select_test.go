package valueobject

import (
	"context"
	"testing"

	"github.com/go-leo/gox/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/themevalue/ddd"
)

func testFiles() []*File {
	base := errorx.Ignore(FileFromMap(testFileData()))
	odt := errorx.Ignore(FileFromFields(FileFields{Size: "10", Mime: "application/vnd.oasis.opendocument.text", Name: "Test.odt", URL: "http://example.com/test.odt"}))
	return []*File{base, base.WithLanguageCode("fr"), base.WithLanguageCode("de"), odt}
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	files := testFiles()

	pdfs := Select(ctx, files, HasExtension(".PDF"))
	assert.Len(t, pdfs, 3)

	french := Select(ctx, files, HasLanguageCode("fr"))
	require.Len(t, french, 1)
	assert.Equal(t, "fr", french[0].LanguageCode())

	untranslatedPDF := Select(ctx, files, HasExtension("pdf").And(HasLanguageCode("")))
	require.Len(t, untranslatedPDF, 1)
	assert.True(t, untranslatedPDF[0].SameValueAs(files[0]))

	assert.Empty(t, Select(ctx, files, HasLanguageCode("it")))
	assert.Empty(t, Select[*File](ctx, nil, HasLanguageCode("fr")))
}

func TestTranslation(t *testing.T) {
	ctx := context.Background()
	files := testFiles()

	de, ok := Translation(ctx, files, "de")
	require.True(t, ok)
	assert.Equal(t, "de", de.LanguageCode())

	fallback, ok := Translation(ctx, files, "it")
	require.True(t, ok)
	assert.Equal(t, "", fallback.LanguageCode())

	_, ok = Translation(ctx, files[1:3], "it")
	assert.False(t, ok)
}

func TestHasVariant(t *testing.T) {
	ctx := context.Background()
	date := errorx.Ignore(DateFromFields(DateFields{Day: "1", Month: "1", Year: "2000"}))
	dates := []*Date{date, date.WithVariant("start"), date.WithVariant("end"), date.WithVariant("start")}

	assert.Len(t, Select(ctx, dates, HasVariant("start")), 2)
	assert.Len(t, Select(ctx, dates, HasVariant("start").Not()), 2)
	assert.Len(t, ddd.Distinct(dates), 3)

	first, ok := First(ctx, dates, FieldEquals[*Date](FieldWeekDay, "Saturday"))
	require.True(t, ok)
	assert.Equal(t, "default", first.Variant())
}
