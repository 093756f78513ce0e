package attachments

// Kind tags the media variant of an attachment.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
	KindPoll     Kind = "poll"
)

// Attachment is the closed set of media variants a post can carry.
// Each variant holds only its own fields; Ref identifies the item for
// removal, which is keyed by (collection, id) because ids are only unique
// within their originating collection.
type Attachment interface {
	Kind() Kind
	Ref() Ref
}

// Ref is the removal key of an attachment.
type Ref struct {
	Collection string // plural collection name inside the bundle
	Id         string
}

type Image struct {
	Id   string `json:"id"`
	Url  string `json:"url"`
	Name string `json:"name"`
}

func (Image) Kind() Kind { return KindImage }
func (a Image) Ref() Ref { return Ref{CollectionFor(KindImage), a.Id} }

type Video struct {
	Id   string `json:"id"`
	Url  string `json:"url"`
	Name string `json:"name"`
}

func (Video) Kind() Kind { return KindVideo }
func (a Video) Ref() Ref { return Ref{CollectionFor(KindVideo), a.Id} }

type Document struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	SizeBytes int64  `json:"size"`
}

func (Document) Kind() Kind { return KindDocument }
func (a Document) Ref() Ref { return Ref{CollectionFor(KindDocument), a.Id} }

type Poll struct {
	Id       string   `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

func (Poll) Kind() Kind { return KindPoll }
func (a Poll) Ref() Ref { return Ref{CollectionFor(KindPoll), a.Id} }

type Option struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}

// Bundle is the four-collection container of raw attachment data, owned by
// the post-composition form. A nil Polls slice counts as empty.
type Bundle struct {
	Images    []Image    `json:"images"`
	Videos    []Video    `json:"videos"`
	Documents []Document `json:"documents"`
	Polls     []Poll     `json:"polls,omitempty"`
}

// Counts holds the per-collection item counts shown next to the gallery.
type Counts struct {
	Images    int
	Videos    int
	Documents int
	Polls     int
}

func (b Bundle) Counts() Counts {
	return Counts{len(b.Images), len(b.Videos), len(b.Documents), len(b.Polls)}
}

func (b Bundle) Len() int {
	return len(b.Images) + len(b.Videos) + len(b.Documents) + len(b.Polls)
}

func (b Bundle) IsEmpty() bool {
	return b.Len() == 0
}

// HasMixed reports whether strictly more than one collection is non-empty.
func (b Bundle) HasMixed() bool {
	nonEmpty := 0
	for _, n := range []int{len(b.Images), len(b.Videos), len(b.Documents), len(b.Polls)} {
		if n > 0 {
			nonEmpty++
		}
	}
	return nonEmpty > 1
}

// CollectionFor maps a media kind to its plural collection name, the first
// half of the removal key.
func CollectionFor(k Kind) string {
	switch k {
	case KindImage:
		return "images"
	case KindVideo:
		return "videos"
	case KindDocument:
		return "documents"
	case KindPoll:
		return "polls"
	}
	return ""
}
