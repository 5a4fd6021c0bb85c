package image

import (
	"hash/fnv"
	"strings"
)

// Curated header images keyed by topic category, used whenever AI generation
// is unavailable. Selection is a stable hash of the article title, so the
// same title always gets the same image while titles within a category vary.
var placeholderPools = map[string][]string{
	"politics": {
		"https://images.unsplash.com/photo-1529107386315-e1a2ed48a620?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1555848962-6e79363ec58f?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1575320181282-9afab399332c?w=1200&h=630&fit=crop",
	},
	"technology": {
		"https://images.unsplash.com/photo-1518770660439-4636190af475?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1531297484001-80022131f5a1?w=1200&h=630&fit=crop",
	},
	"sports": {
		"https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1517649763962-0c623066013b?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1579952363873-27f3bade9f55?w=1200&h=630&fit=crop",
	},
	"business": {
		"https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=1200&h=630&fit=crop",
	},
	"entertainment": {
		"https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=1200&h=630&fit=crop",
	},
	"health": {
		"https://images.unsplash.com/photo-1505751172876-fa1923c5c528?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=1200&h=630&fit=crop",
	},
	"science": {
		"https://images.unsplash.com/photo-1507413245164-6160d8298b31?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1532094349884-543bc11b234d?w=1200&h=630&fit=crop",
	},
	"world": {
		"https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=1200&h=630&fit=crop",
		"https://images.unsplash.com/photo-1495020689067-958852a7765e?w=1200&h=630&fit=crop",
	},
}

const defaultPlaceholder = "https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=1200&h=630&fit=crop"

// Placeholder picks a curated image for the category, varied by title.
func Placeholder(category, title string) string {
	pool, ok := placeholderPools[strings.ToLower(strings.TrimSpace(category))]
	if !ok || len(pool) == 0 {
		pool = placeholderPools["world"]
	}
	if len(pool) == 0 {
		return defaultPlaceholder
	}

	h := fnv.New32a()
	h.Write([]byte(title))
	return pool[h.Sum32()%uint32(len(pool))]
}
