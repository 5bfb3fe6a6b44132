package xfer

const (
	// AppPort is the default port that the app will use for its HTTP server.
	// The app serves the browsable pages, the JSON API and the metrics on
	// this port.
	AppPort = 4050

	// ReplayURL is the default host serving replays and replay search.
	ReplayURL = "https://replay.pokemonshowdown.com"

	// MainURL is the default host serving users, ladders and news.
	MainURL = "https://pokemonshowdown.com"

	// PlayURL is the default host serving the pokedex and move data.
	PlayURL = "https://play.pokemonshowdown.com"

	// SpriteBaseURL is where animated sprites live, keyed by pokemon id.
	SpriteBaseURL = PlayURL + "/sprites/ani/"

	// SpriteExt is the file extension of the animated sprites.
	SpriteExt = ".gif"
)

// Details are some generic details that can be fetched from /api
type Details struct {
	ID       string `json:"id"`
	Version  string `json:"version"`
	Hostname string `json:"hostname"`
}
