package config

import "time"

// Config holds everything a run needs: where to fetch from and where to put it.
type Config struct {
	Folder    string        `fig:"folder"`
	URLs      []string      `fig:"urls"`
	Prefix    string        `fig:"prefix"`
	Extension string        `fig:"extension"`
	Timeout   time.Duration `fig:"timeout"`
	UserAgent string        `fig:"user_agent"`
	Debug     bool          `fig:"debug"`
	Progress  bool          `fig:"progress"`
	Log       Log           `fig:"log"`
}

// Log selects the diagnostic log format. Console output is the default,
// JSON is meant for collecting runs in CI.
type Log struct {
	JSON    bool `fig:"json"`
	NoColor bool `fig:"no_color"`
}

const (
	DefaultFolder    = "images/vab-steps"
	DefaultPrefix    = "step-"
	DefaultExtension = "png"
	DefaultUserAgent = "stepfetch/1.0"
)

// ReferenceURLs is the list of step images fetched when nothing else is configured.
var ReferenceURLs = []string{
	"https://static.tildacdn.com/tild3033-3839-4538-a539-303765393065/image.png",
	"https://static.tildacdn.com/tild3036-3533-4332-b131-623463623563/image.png",
	"https://static.tildacdn.com/tild3333-3966-4539-a238-373939306530/image.png",
	"https://static.tildacdn.com/tild3435-3234-4237-b438-623231396163/image.png",
	"https://static.tildacdn.com/tild6636-3764-4364-b739-303462616532/image.png",
	"https://static.tildacdn.com/tild6166-3561-4332-b530-656362656230/image.png",
	"https://static.tildacdn.com/tild6135-3563-4863-a337-653064326631/image.png",
	"https://static.tildacdn.com/tild3239-6165-4233-b263-663261356534/image.png",
	"https://static.tildacdn.com/tild6133-3266-4336-a566-616138623761/image.png",
	"https://static.tildacdn.com/tild6566-3738-4066-b631-313866383664/image.png",
	"https://static.tildacdn.com/tild3163-3266-4835-a437-353237346433/image.png",
}

// Default returns the configuration used when no file, env or flag overrides it.
func Default() Config {
	urls := make([]string, len(ReferenceURLs))
	copy(urls, ReferenceURLs)
	return Config{
		Folder:    DefaultFolder,
		URLs:      urls,
		Prefix:    DefaultPrefix,
		Extension: DefaultExtension,
		UserAgent: DefaultUserAgent,
	}
}

// Merge overlays every non-zero field of o on top of c.
func (c Config) Merge(o Config) Config {
	if o.Folder != "" {
		c.Folder = o.Folder
	}
	if len(o.URLs) > 0 {
		c.URLs = o.URLs
	}
	if o.Prefix != "" {
		c.Prefix = o.Prefix
	}
	if o.Extension != "" {
		c.Extension = o.Extension
	}
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	c.Debug = c.Debug || o.Debug
	c.Progress = c.Progress || o.Progress
	c.Log.JSON = c.Log.JSON || o.Log.JSON
	c.Log.NoColor = c.Log.NoColor || o.Log.NoColor
	return c
}
