package tidal

// All entity fields are pointers: the API omits fields depending on the
// endpoint that produced the entity, and absent means unknown. Embedded
// entities (an Album's artists, a Track's album) are denormalized
// copies, not references.

// ModelType describes the kind of entity a record represents.
type ModelType string

// Known model types.
const (
	ModelTypeAlbum       ModelType = "ALBUM"
	ModelTypeArtist      ModelType = "ARTIST"
	ModelTypeEditorial   ModelType = "EDITORIAL"
	ModelTypeMain        ModelType = "MAIN"
	ModelTypeUser        ModelType = "USER"
	ModelTypePodcast     ModelType = "PODCAST"
	ModelTypeContributor ModelType = "CONTRIBUTOR"
)

// AudioQuality is the streaming quality tier of an album or track.
type AudioQuality string

// Known audio qualities.
const (
	AudioQualityLow      AudioQuality = "LOW"
	AudioQualityHigh     AudioQuality = "HIGH"
	AudioQualityLossless AudioQuality = "LOSSLESS"
	AudioQualityMaster   AudioQuality = "HI_RES"
)

// AudioMode is the channel layout of an album or track.
type AudioMode string

// Known audio modes.
const (
	AudioModeMono       AudioMode = "MONO"
	AudioModeStereo     AudioMode = "STEREO"
	AudioModeSony360    AudioMode = "SONY_360RA"
	AudioModeDolbyAtmos AudioMode = "DOLBY_ATMOS"
)

// ArtistType is the role an artist record plays on the entity that
// embeds it.
type ArtistType string

// Known artist types.
const (
	ArtistTypeArtist      ArtistType = "ARTIST"
	ArtistTypeContributor ArtistType = "CONTRIBUTOR"
)

// Artist is a Tidal artist.
type Artist struct {
	ID          *int64       `json:"id,omitempty"`
	Name        *string      `json:"name,omitempty"`
	ArtistTypes []ArtistType `json:"artistTypes,omitempty"`
	URL         *string      `json:"url,omitempty"`
	Picture     *string      `json:"picture,omitempty"`
	Popularity  *int         `json:"popularity,omitempty"`
	Type        *ModelType   `json:"type,omitempty"`
}

// Album is a Tidal album.
type Album struct {
	ID                   *int64        `json:"id,omitempty"`
	Title                *string       `json:"title,omitempty"`
	Duration             *int          `json:"duration,omitempty"`
	StreamReady          *bool         `json:"streamReady,omitempty"`
	StreamStartDate      *string       `json:"streamStartDate,omitempty"`
	AllowStreaming       *bool         `json:"allowStreaming,omitempty"`
	PremiumStreamingOnly *bool         `json:"premiumStreamingOnly,omitempty"`
	NumberOfTracks       *int          `json:"numberOfTracks,omitempty"`
	NumberOfVideos       *int          `json:"numberOfVideos,omitempty"`
	NumberOfVolumes      *int          `json:"numberOfVolumes,omitempty"`
	ReleaseDate          *string       `json:"releaseDate,omitempty"`
	Copyright            *string       `json:"copyright,omitempty"`
	Version              *string       `json:"version,omitempty"`
	URL                  *string       `json:"url,omitempty"`
	Cover                *string       `json:"cover,omitempty"`
	VideoCover           *string       `json:"videoCover,omitempty"`
	Explicit             *bool         `json:"explicit,omitempty"`
	UPC                  *string       `json:"upc,omitempty"`
	Popularity           *int          `json:"popularity,omitempty"`
	AudioQuality         *AudioQuality `json:"audioQuality,omitempty"`
	AudioModes           []AudioMode   `json:"audioModes,omitempty"`
	Artists              []Artist      `json:"artists,omitempty"`
	Type                 *ModelType    `json:"type,omitempty"`
}

// Playlist is a Tidal playlist. Playlists are identified by UUID rather
// than numeric id.
type Playlist struct {
	UUID            *string    `json:"uuid,omitempty"`
	Title           *string    `json:"title,omitempty"`
	NumberOfTracks  *int       `json:"numberOfTracks,omitempty"`
	NumberOfVideos  *int       `json:"numberOfVideos,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Duration        *int       `json:"duration,omitempty"`
	LastUpdated     *string    `json:"lastUpdated,omitempty"`
	Created         *string    `json:"created,omitempty"`
	Type            *ModelType `json:"type,omitempty"`
	PublicPlaylist  *bool      `json:"publicPlaylist,omitempty"`
	URL             *string    `json:"url,omitempty"`
	Image           *string    `json:"image,omitempty"`
	Popularity      *int       `json:"popularity,omitempty"`
	SquareImage     *string    `json:"squareImage,omitempty"`
	PromotedArtists []Artist   `json:"promotedArtists,omitempty"`
	LastItemAddedAt *string    `json:"lastItemAddedAt,omitempty"`
}

// Track is a Tidal track.
type Track struct {
	ID                   *int64        `json:"id,omitempty"`
	Title                *string       `json:"title,omitempty"`
	Duration             *int          `json:"duration,omitempty"`
	ReplayGain           *float64      `json:"replayGain,omitempty"`
	Peak                 *float64      `json:"peak,omitempty"`
	AllowStreaming       *bool         `json:"allowStreaming,omitempty"`
	StreamReady          *bool         `json:"streamReady,omitempty"`
	StreamStartDate      *string       `json:"streamStartDate,omitempty"`
	PremiumStreamingOnly *bool         `json:"premiumStreamingOnly,omitempty"`
	TrackNumber          *int          `json:"trackNumber,omitempty"`
	VolumeNumber         *int          `json:"volumeNumber,omitempty"`
	Version              *string       `json:"version,omitempty"`
	Popularity           *int          `json:"popularity,omitempty"`
	Copyright            *string       `json:"copyright,omitempty"`
	URL                  *string       `json:"url,omitempty"`
	ISRC                 *string       `json:"isrc,omitempty"`
	Editable             *bool         `json:"editable,omitempty"`
	Explicit             *bool         `json:"explicit,omitempty"`
	AudioQuality         *AudioQuality `json:"audioQuality,omitempty"`
	AudioModes           []AudioMode   `json:"audioModes,omitempty"`
	Artist               *Artist       `json:"artist,omitempty"`
	Artists              []Artist      `json:"artists,omitempty"`
	Album                *Album        `json:"album,omitempty"`
}
