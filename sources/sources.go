package sources

// Source describes one upstream RSS/Atom endpoint. The registry is static:
// loaded at process start, never mutated at runtime.
type Source struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	// Priority ranges 1-10; higher means more authoritative. It seeds the
	// base importance score (priority * 10).
	Priority int    `json:"priority"`
	Region   string `json:"region,omitempty"`
}

// Registry is the curated feed list. Categories: research, market, security,
// tools, robotics, ai, us-intel, current-wars.
var Registry = []Source{
	// Research labs & AI orgs
	{ID: "openai", Name: "OpenAI Blog", URL: "https://openai.com/blog/rss/", Category: "research", Priority: 10, Region: "US"},
	{ID: "google-ai", Name: "Google AI Blog", URL: "https://ai.googleblog.com/feeds/posts/default", Category: "research", Priority: 10, Region: "US"},
	{ID: "deepmind", Name: "DeepMind Blog", URL: "https://deepmind.google/blog/rss.xml", Category: "research", Priority: 10, Region: "Europe"},
	{ID: "anthropic", Name: "Anthropic", URL: "https://www.anthropic.com/index/rss.xml", Category: "research", Priority: 10, Region: "US"},
	{ID: "meta-ai", Name: "Meta AI", URL: "https://ai.facebook.com/blog/rss/", Category: "research", Priority: 10, Region: "US"},
	{ID: "microsoft-research", Name: "Microsoft Research", URL: "https://www.microsoft.com/en-us/research/feed/", Category: "research", Priority: 10, Region: "US"},
	{ID: "nvidia-blog", Name: "NVIDIA AI", URL: "https://blogs.nvidia.com/feed/", Category: "research", Priority: 9, Region: "US"},
	{ID: "bair", Name: "Berkeley AI Research", URL: "https://bair.berkeley.edu/blog/feed.xml", Category: "research", Priority: 9, Region: "US"},
	{ID: "arxiv-ai", Name: "arXiv AI", URL: "http://export.arxiv.org/rss/cs.AI", Category: "research", Priority: 10, Region: "Global"},

	// Market & business
	{ID: "techcrunch-ai", Name: "TechCrunch AI", URL: "https://techcrunch.com/category/artificial-intelligence/feed/", Category: "market", Priority: 10, Region: "US"},
	{ID: "venturebeat-ai", Name: "VentureBeat AI", URL: "https://venturebeat.com/category/ai/feed/", Category: "market", Priority: 10, Region: "US"},
	{ID: "nyt-tech", Name: "NYT Technology", URL: "https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml", Category: "market", Priority: 9, Region: "US"},
	{ID: "guardian-tech", Name: "The Guardian Tech", URL: "https://www.theguardian.com/uk/technology/rss", Category: "market", Priority: 9, Region: "Europe"},
	{ID: "bbc-tech", Name: "BBC Technology", URL: "https://feeds.bbci.co.uk/news/technology/rss.xml", Category: "market", Priority: 9, Region: "Europe"},
	{ID: "cnbc-tech", Name: "CNBC Technology", URL: "https://www.cnbc.com/id/19854910/device/rss/rss.html", Category: "market", Priority: 8, Region: "US"},
	{ID: "engadget", Name: "Engadget", URL: "https://www.engadget.com/rss.xml", Category: "market", Priority: 8, Region: "US"},
	{ID: "zdnet", Name: "ZDNet", URL: "https://www.zdnet.com/news/rss.xml", Category: "market", Priority: 8, Region: "US"},

	// Security
	{ID: "the-hacker-news", Name: "The Hacker News", URL: "https://feeds.feedburner.com/TheHackersNews?format=xml", Category: "security", Priority: 10, Region: "Global"},
	{ID: "krebs-security", Name: "Krebs on Security", URL: "https://krebsonsecurity.com/feed/", Category: "security", Priority: 10, Region: "US"},
	{ID: "bleeping-computer", Name: "BleepingComputer", URL: "https://www.bleepingcomputer.com/feed/", Category: "security", Priority: 9, Region: "US"},
	{ID: "dark-reading", Name: "Dark Reading", URL: "https://www.darkreading.com/rss.xml", Category: "security", Priority: 9, Region: "US"},
	{ID: "schneier", Name: "Schneier on Security", URL: "https://www.schneier.com/blog/atom.xml", Category: "security", Priority: 9, Region: "US"},
	{ID: "cisa-alerts", Name: "CISA Alerts", URL: "https://www.cisa.gov/uscert/ncas/alerts.xml", Category: "security", Priority: 10, Region: "US"},

	// Engineering & tools
	{ID: "github-blog", Name: "GitHub Blog", URL: "https://github.blog/feed/", Category: "tools", Priority: 9, Region: "US"},
	{ID: "huggingface", Name: "Hugging Face", URL: "https://huggingface.co/blog/feed.xml", Category: "tools", Priority: 10, Region: "Global"},
	{ID: "langchain", Name: "LangChain", URL: "https://blog.langchain.dev/rss/", Category: "tools", Priority: 9, Region: "US"},
	{ID: "pytorch", Name: "PyTorch", URL: "https://pytorch.org/blog/feed.xml", Category: "tools", Priority: 8, Region: "US"},
	{ID: "infoq", Name: "InfoQ", URL: "https://feed.infoq.com/", Category: "tools", Priority: 8, Region: "US"},

	// Robotics & hardware
	{ID: "techcrunch-robotics", Name: "TechCrunch Robotics", URL: "https://techcrunch.com/category/robotics/feed/", Category: "robotics", Priority: 10, Region: "US"},
	{ID: "mit-robotics", Name: "MIT News - Robotics", URL: "https://news.mit.edu/rss/topic/robotics", Category: "robotics", Priority: 10, Region: "Global"},
	{ID: "robot-report", Name: "The Robot Report", URL: "https://www.therobotreport.com/feed/", Category: "robotics", Priority: 9, Region: "US"},
	{ID: "ieee-robotics", Name: "IEEE Robotics", URL: "https://spectrum.ieee.org/feeds/topic/robotics.rss", Category: "robotics", Priority: 9, Region: "Global"},
	{ID: "boston-dynamics", Name: "Boston Dynamics", URL: "https://bostondynamics.com/feed/", Category: "robotics", Priority: 9, Region: "US"},

	// AI news & analysis
	{ID: "wired-ai", Name: "Wired AI", URL: "https://www.wired.com/feed/tag/ai/latest/rss", Category: "ai", Priority: 8, Region: "US"},
	{ID: "verge-ai", Name: "The Verge AI", URL: "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml", Category: "ai", Priority: 8, Region: "US"},
	{ID: "mit-tech-review", Name: "MIT Tech Review", URL: "https://www.technologyreview.com/topic/artificial-intelligence/feed", Category: "ai", Priority: 9, Region: "US"},
	{ID: "ars-technica-ai", Name: "Ars Technica AI", URL: "https://feeds.arstechnica.com/arstechnica/technology-lab", Category: "ai", Priority: 8, Region: "US"},

	// US intelligence & defense
	{ID: "dod-news", Name: "Dept of Defense", URL: "https://news.google.com/rss/search?q=site:defense.gov&hl=en-US&gl=US&ceid=US:en", Category: "us-intel", Priority: 10, Region: "US"},
	{ID: "state-dept", Name: "State Department", URL: "https://www.state.gov/rss-feed/press-releases/feed/", Category: "us-intel", Priority: 9, Region: "US"},
	{ID: "doj-news", Name: "DOJ News", URL: "https://www.justice.gov/news/rss", Category: "us-intel", Priority: 10, Region: "US"},
	{ID: "defense-news", Name: "Defense News", URL: "https://www.defensenews.com/arc/outboundfeeds/rss/", Category: "us-intel", Priority: 10, Region: "US"},
	{ID: "war-on-rocks", Name: "War on the Rocks", URL: "https://warontherocks.com/feed/", Category: "us-intel", Priority: 10, Region: "US"},
	{ID: "defense-one", Name: "Defense One", URL: "https://www.defenseone.com/rss/all/", Category: "us-intel", Priority: 9, Region: "US"},

	// Current conflicts
	{ID: "gaza-war", Name: "Gaza War News", URL: "https://news.google.com/rss/search?q=Gaza+War+IDF+Hamas&hl=en-US&gl=US&ceid=US:en", Category: "current-wars", Priority: 10, Region: "Global"},
	{ID: "ukraine-war", Name: "Ukraine War News", URL: "https://news.google.com/rss/search?q=Ukraine+War+Russia+military&hl=en-US&gl=US&ceid=US:en", Category: "current-wars", Priority: 10, Region: "Europe"},
	{ID: "middle-east-war", Name: "Middle East Conflict", URL: "https://news.google.com/rss/search?q=Middle+East+War+conflict+military&hl=en-US&gl=US&ceid=US:en", Category: "current-wars", Priority: 9, Region: "Global"},
}

// ByCategory returns the registry entries for one category, or the whole
// registry for "" / "all".
func ByCategory(category string) []Source {
	if category == "" || category == "all" || category == "All" {
		return Registry
	}
	var out []Source
	for _, s := range Registry {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the source with the given id.
func Lookup(id string) (Source, bool) {
	for _, s := range Registry {
		if s.ID == id {
			return s, true
		}
	}
	return Source{}, false
}
