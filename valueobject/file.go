package valueobject

import (
	"context"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/go-leo/gox/convx"

	"github.com/go-leo/themevalue/builder"
	"github.com/go-leo/themevalue/ddd"
	"github.com/go-leo/themevalue/factory"
)

const (
	FieldSize         = "size"
	FieldMime         = "mime"
	FieldName         = "name"
	FieldURL          = "url"
	FieldLanguageCode = "language_code"
	FieldExtension    = "extension"
	FieldTitle        = "title"
)

// Language is the language a file entity is stored in.
type Language interface {
	ID() string
}

// FileEntity is the file collaborator FileFromEntity reads from.
type FileEntity interface {
	FileURI() string
	MimeType() string
	Size() int64
	Filename() string
	Language() Language
}

var _ ddd.ValueObject[*File] = (*File)(nil)

// File is the metadata of a downloadable file.
type File struct {
	Base
}

// FileFields are the named inputs of a File. An empty Title means Name.
type FileFields struct {
	Size         string
	Mime         string
	Name         string
	URL          string
	Title        string
	LanguageCode string
}

func newFile(fields FileFields) *File {
	title := fields.Title
	if title == "" {
		title = fields.Name
	}
	return &File{
		Base: newBase(
			field{name: FieldSize, value: fields.Size},
			field{name: FieldMime, value: fields.Mime},
			field{name: FieldName, value: fields.Name},
			field{name: FieldURL, value: fields.URL},
			field{name: FieldLanguageCode, value: fields.LanguageCode},
			field{name: FieldExtension, value: extension(fields.Name, fields.URL, fields.Mime)},
			field{name: FieldTitle, value: title},
		),
	}
}

// FileFromFields builds a File from named fields. Every field may be empty, so
// the error is always nil; it is returned for symmetry with DateFromFields.
func FileFromFields(fields FileFields) (*File, error) {
	return newFile(fields), nil
}

// FileFromMap builds a File from a raw field map. size, mime, name and url
// are required, language_code and title are optional.
func FileFromMap(m map[string]string) (*File, error) {
	var fields FileFields
	required := []struct {
		key string
		dst *string
	}{
		{key: FieldSize, dst: &fields.Size},
		{key: FieldMime, dst: &fields.Mime},
		{key: FieldName, dst: &fields.Name},
		{key: FieldURL, dst: &fields.URL},
	}
	for _, r := range required {
		v, ok := m[r.key]
		if !ok {
			return nil, newMissingFieldError(r.key)
		}
		*r.dst = v
	}
	fields.LanguageCode = m[FieldLanguageCode]
	fields.Title = m[FieldTitle]
	return FileFromFields(fields)
}

// FileFromJSON decodes a JSON object of strings and builds a File like FileFromMap.
func FileFromJSON(data []byte) (*File, error) {
	m, err := decodeFields(data)
	if err != nil {
		return nil, err
	}
	return FileFromMap(m)
}

// FileFromEntity builds a File from a file entity. Every query on the entity
// and on its language is made exactly once.
func FileFromEntity(entity FileEntity) (*File, error) {
	fields := FileFields{
		URL:  entity.FileURI(),
		Mime: entity.MimeType(),
		Size: convx.ToString(entity.Size()),
		Name: entity.Filename(),
	}
	if lang := entity.Language(); lang != nil {
		fields.LanguageCode = lang.ID()
	}
	return FileFromFields(fields)
}

// WithLanguageCode returns a copy of f with language_code replaced.
func (f *File) WithLanguageCode(code string) *File {
	return &File{Base: f.with(FieldLanguageCode, code)}
}

// WithTitle returns a copy of f with title replaced.
func (f *File) WithTitle(title string) *File {
	return &File{Base: f.with(FieldTitle, title)}
}

func (f *File) Size() string         { return f.value(FieldSize) }
func (f *File) Mime() string         { return f.value(FieldMime) }
func (f *File) Name() string         { return f.value(FieldName) }
func (f *File) URL() string          { return f.value(FieldURL) }
func (f *File) LanguageCode() string { return f.value(FieldLanguageCode) }
func (f *File) Extension() string    { return f.value(FieldExtension) }
func (f *File) Title() string        { return f.value(FieldTitle) }

func (f *File) SameValueAs(other *File) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Base.Equal(other.Base)
}

// canonicalExtensions fixes the extension of common mime types whose
// registered extensions are ambiguous or host dependent.
var canonicalExtensions = map[string]string{
	"application/gzip":                                "gz",
	"application/json":                                "json",
	"application/msword":                              "doc",
	"application/pdf":                                 "pdf",
	"application/vnd.ms-excel":                        "xls",
	"application/vnd.ms-powerpoint":                   "ppt",
	"application/vnd.oasis.opendocument.presentation": "odp",
	"application/vnd.oasis.opendocument.spreadsheet":  "ods",
	"application/vnd.oasis.opendocument.text":         "odt",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
	"application/xml": "xml",
	"application/zip": "zip",
	"audio/mpeg":      "mp3",
	"image/gif":       "gif",
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/svg+xml":   "svg",
	"image/tiff":      "tif",
	"image/webp":      "webp",
	"text/csv":        "csv",
	"text/html":       "html",
	"text/plain":      "txt",
	"text/xml":        "xml",
	"video/mp4":       "mp4",
	"video/mpeg":      "mpeg",
}

// extension is the file name suffix, else the url path suffix, else what the
// mime type maps to.
func extension(name string, rawURL string, mimeType string) string {
	if ext := suffix(name); ext != "" {
		return ext
	}
	if u, err := url.Parse(rawURL); err == nil {
		if ext := suffix(u.Path); ext != "" {
			return ext
		}
	}
	return mimeExtension(mimeType)
}

// mimeExtension looks mimeType up in canonicalExtensions and falls back to the
// lowercased subtype. The host mime database is never consulted. A bare token
// such as "pdf" is returned lowercased.
func mimeExtension(mimeType string) string {
	media := strings.ToLower(strings.TrimSpace(mimeType))
	if media == "" {
		return ""
	}
	if parsed, _, err := mime.ParseMediaType(media); err == nil {
		media = parsed
	}
	if ext, ok := canonicalExtensions[media]; ok {
		return ext
	}
	subtype := media
	if i := strings.LastIndex(media, "/"); i >= 0 {
		subtype = media[i+1:]
	}
	return subtype
}

func suffix(p string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
}

var _ builder.Builder[*File] = (*FileBuilder)(nil)

// FileBuilder collects file fields by name.
type FileBuilder struct {
	fields FileFields
}

func NewFileBuilder() *FileBuilder {
	return &FileBuilder{}
}

func (b *FileBuilder) Size(size string) *FileBuilder {
	b.fields.Size = size
	return b
}

func (b *FileBuilder) Mime(mime string) *FileBuilder {
	b.fields.Mime = mime
	return b
}

func (b *FileBuilder) Name(name string) *FileBuilder {
	b.fields.Name = name
	return b
}

func (b *FileBuilder) URL(url string) *FileBuilder {
	b.fields.URL = url
	return b
}

func (b *FileBuilder) Title(title string) *FileBuilder {
	b.fields.Title = title
	return b
}

func (b *FileBuilder) LanguageCode(code string) *FileBuilder {
	b.fields.LanguageCode = code
	return b
}

func (b *FileBuilder) Build(ctx context.Context) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FileFromFields(b.fields)
}

// NewFileFactory returns a factory building files from file entities.
func NewFileFactory() factory.Factory[*File, FileEntity] {
	return factory.Func[*File, FileEntity](func(ctx context.Context, entity FileEntity) (*File, error) {
		return FileFromEntity(entity)
	})
}
