package feed

// Source is a single syndication feed. Preferred sources rank ahead of the
// rest and contribute more items per feed.
type Source struct {
	URL       string
	Name      string
	Preferred bool
}

var topicSources = map[string][]Source{
	"politics": {
		{URL: "https://rss.nytimes.com/services/xml/rss/nyt/Politics.xml", Name: "NYTimes"},
		{URL: "https://feeds.bbci.co.uk/news/politics/rss.xml", Name: "BBC"},
	},
	"technology": {
		{URL: "https://feeds.arstechnica.com/arstechnica/technology-lab", Name: "Ars Technica"},
		{URL: "https://www.theverge.com/rss/index.xml", Name: "The Verge"},
		{URL: "https://techcrunch.com/feed/", Name: "TechCrunch"},
	},
	"sports": {
		{URL: "https://rss.nytimes.com/services/xml/rss/nyt/Sports.xml", Name: "NYTimes"},
		{URL: "https://feeds.bbci.co.uk/sport/rss.xml", Name: "BBC"},
	},
	"business": {
		{URL: "https://feeds.bbci.co.uk/news/business/rss.xml", Name: "BBC"},
		{URL: "https://rss.nytimes.com/services/xml/rss/nyt/Business.xml", Name: "NYTimes"},
	},
	"entertainment": {
		{URL: "https://feeds.bbci.co.uk/news/entertainment_and_arts/rss.xml", Name: "BBC"},
		{URL: "https://rss.nytimes.com/services/xml/rss/nyt/Arts.xml", Name: "NYTimes"},
	},
	"health": {
		{URL: "https://rss.nytimes.com/services/xml/rss/nyt/Health.xml", Name: "NYTimes"},
		{URL: "https://feeds.bbci.co.uk/news/health/rss.xml", Name: "BBC"},
	},
	"science": {
		{URL: "https://rss.nytimes.com/services/xml/rss/nyt/Science.xml", Name: "NYTimes"},
		{URL: "https://feeds.bbci.co.uk/news/science_and_environment/rss.xml", Name: "BBC"},
	},
	"world": {
		{URL: "https://rss.nytimes.com/services/xml/rss/nyt/World.xml", Name: "NYTimes"},
		{URL: "https://feeds.bbci.co.uk/news/world/rss.xml", Name: "BBC"},
	},
}

// regionalSources are included on top of the topic set whenever regional
// focus is requested, regardless of topic.
var regionalSources = []Source{
	{URL: "https://timesofindia.indiatimes.com/rssfeedstopstories.cms", Name: "Times of India", Preferred: true},
	{URL: "https://feeds.feedburner.com/ndtvnews-top-stories", Name: "NDTV", Preferred: true},
	{URL: "https://economictimes.indiatimes.com/rssfeedstopstories.cms", Name: "Economic Times", Preferred: true},
}

var topicAliases = map[string]string{
	"tech":          "technology",
	"international": "world",
	"india":         "world",
}
