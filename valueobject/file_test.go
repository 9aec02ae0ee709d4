package valueobject

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-leo/themevalue/factory"
)

type fakeLanguage struct {
	id    string
	calls map[string]int
}

func (l *fakeLanguage) ID() string {
	l.calls["ID"]++
	return l.id
}

type fakeFileEntity struct {
	uri      string
	mimeType string
	size     int64
	filename string
	language Language
	calls    map[string]int
}

func (e *fakeFileEntity) FileURI() string {
	e.calls["FileURI"]++
	return e.uri
}

func (e *fakeFileEntity) MimeType() string {
	e.calls["MimeType"]++
	return e.mimeType
}

func (e *fakeFileEntity) Size() int64 {
	e.calls["Size"]++
	return e.size
}

func (e *fakeFileEntity) Filename() string {
	e.calls["Filename"]++
	return e.filename
}

func (e *fakeFileEntity) Language() Language {
	e.calls["Language"]++
	return e.language
}

func newFakeFileEntity(langID string) *fakeFileEntity {
	calls := map[string]int{}
	return &fakeFileEntity{
		uri:      "http://example.com/test.pdf",
		mimeType: "pdf",
		size:     123,
		filename: "Test.pdf",
		language: &fakeLanguage{id: langID, calls: calls},
		calls:    calls,
	}
}

func testFileData() map[string]string {
	return map[string]string{
		"size": "123",
		"mime": "pdf",
		"name": "Test.pdf",
		"url":  "http://example.com/test.pdf",
	}
}

func TestFileFromMap(t *testing.T) {
	file, err := FileFromMap(testFileData())
	require.NoError(t, err)

	assert.Equal(t, "123", file.Size())
	assert.Equal(t, "pdf", file.Mime())
	assert.Equal(t, "http://example.com/test.pdf", file.URL())
	assert.Equal(t, "Test.pdf", file.Name())
	assert.Equal(t, "Test.pdf", file.Title())
	assert.Equal(t, "pdf", file.Extension())
	assert.Equal(t, "", file.LanguageCode())
	assert.Equal(t, []string{"size", "mime", "name", "url", "language_code", "extension", "title"}, file.Keys())

	for _, key := range file.Keys() {
		v, err := file.Field(key)
		require.NoError(t, err)
		got, err := file.Get(key)
		require.NoError(t, err)
		assert.Equal(t, got, v)
	}

	_, err = file.Field("nonexistent")
	assert.ErrorIs(t, err, ErrFieldNotFound)

	translated := file.WithLanguageCode("fr")
	assert.Equal(t, "fr", translated.LanguageCode())
	assert.Equal(t, "", file.LanguageCode())
	for _, key := range []string{FieldSize, FieldMime, FieldName, FieldURL, FieldExtension, FieldTitle} {
		assert.Equal(t, file.value(key), translated.value(key), key)
	}
}

func TestFileFromMapRoundTrip(t *testing.T) {
	data := testFileData()
	data["title"] = "Annual report"
	data["language_code"] = "de"
	file, err := FileFromMap(data)
	require.NoError(t, err)

	exported := file.Export()
	for k, v := range data {
		assert.Equal(t, v, exported[k], k)
	}
	assert.Equal(t, "pdf", exported["extension"])
}

func TestFileFromMapMissingField(t *testing.T) {
	for _, key := range []string{"size", "mime", "name", "url"} {
		data := testFileData()
		delete(data, key)
		_, err := FileFromMap(data)
		assert.ErrorIs(t, err, ErrFieldNotFound, key)
		assert.Contains(t, err.Error(), key)
	}
}

func TestFileFromEntity(t *testing.T) {
	entity := newFakeFileEntity("fr")

	file, err := FileFromEntity(entity)
	require.NoError(t, err)

	assert.Equal(t, "123", file.Size())
	assert.Equal(t, "pdf", file.Mime())
	assert.Equal(t, "http://example.com/test.pdf", file.URL())
	assert.Equal(t, "Test.pdf", file.Name())
	assert.Equal(t, "pdf", file.Extension())
	assert.Equal(t, "fr", file.LanguageCode())

	assert.Equal(t, map[string]int{
		"FileURI":  1,
		"MimeType": 1,
		"Size":     1,
		"Filename": 1,
		"Language": 1,
		"ID":       1,
	}, entity.calls)
}

func TestFileFromEntityWithoutLanguage(t *testing.T) {
	entity := newFakeFileEntity("")
	entity.language = nil

	file, err := FileFromEntity(entity)
	require.NoError(t, err)
	assert.True(t, file.Has(FieldLanguageCode))
	assert.Equal(t, "", file.LanguageCode())
}

func TestFileExtension(t *testing.T) {
	for _, tc := range []struct {
		name, url, mime, want string
	}{
		{name: "Report.PDF", url: "", mime: "", want: "pdf"},
		{name: "report", url: "https://example.com/files/report.docx?itok=1", mime: "", want: "docx"},
		{name: "report", url: "", mime: "application/pdf", want: "pdf"},
		{name: "report", url: "", mime: "application/x-unknown-kind", want: "x-unknown-kind"},
		{name: "report", url: "", mime: "pdf", want: "pdf"},
		{name: "report", url: "", mime: "", want: ""},
		{name: "report", url: "", mime: "text/plain", want: "txt"},
		{name: "report", url: "", mime: "text/plain; charset=utf-8", want: "txt"},
		{name: "report", url: "", mime: "image/jpeg", want: "jpg"},
		{name: "report", url: "", mime: "text/html", want: "html"},
		{name: "report", url: "", mime: "IMAGE/PNG", want: "png"},
		{name: "report", url: "", mime: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", want: "docx"},
	} {
		assert.Equal(t, tc.want, extension(tc.name, tc.url, tc.mime), "%+v", tc)
	}
}

func TestFileFromFieldsNeverFails(t *testing.T) {
	file, err := FileFromFields(FileFields{})
	require.NoError(t, err)
	assert.Equal(t, "", file.Extension())
	assert.Equal(t, "", file.Title())
	assert.Equal(t, 7, file.Len())
}

func TestFileWithTitle(t *testing.T) {
	file, err := FileFromFields(FileFields{Size: "1", Mime: "text/plain", Name: "a.txt", URL: "public://a.txt"})
	require.NoError(t, err)
	titled := file.WithTitle("Notes")
	assert.Equal(t, "Notes", titled.Title())
	assert.Equal(t, "a.txt", file.Title())
	assert.False(t, titled.SameValueAs(file))
	assert.True(t, titled.WithTitle("a.txt").SameValueAs(file))
}

func TestFileFromJSON(t *testing.T) {
	file, err := FileFromJSON([]byte(`{"size":"2048","mime":"image/png","name":"logo.png","url":"http://example.com/logo.png","language_code":"en"}`))
	require.NoError(t, err)
	assert.Equal(t, "png", file.Extension())
	assert.Equal(t, "en", file.LanguageCode())
	assert.Equal(t, "logo.png", file.Title())
}

func TestFileBuilderAndFactory(t *testing.T) {
	ctx := context.Background()
	built, err := NewFileBuilder().
		Size("123").
		Mime("pdf").
		Name("Test.pdf").
		URL("http://example.com/test.pdf").
		LanguageCode("fr").
		Build(ctx)
	require.NoError(t, err)

	files, err := factory.CreateAll[*File, FileEntity](ctx, NewFileFactory(), []FileEntity{newFakeFileEntity("fr"), newFakeFileEntity("de")})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.True(t, built.SameValueAs(files[0]))
	assert.Equal(t, "de", files[1].LanguageCode())
}
