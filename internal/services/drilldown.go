package services

import (
	"hash/fnv"
	"slices"
	"sort"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

const topStoresPerNode = 5

// shares of a node's count given to its top stores; the last store takes
// whatever remains
var topStoreShares = []float64{0.30, 0.25, 0.20, 0.15}

func distinctStores(stores []models.Store) []models.Store {
	seen := make(map[string]bool, len(stores))
	out := make([]models.Store, 0, len(stores))
	for _, st := range stores {
		if seen[st.ID] {
			continue
		}
		seen[st.ID] = true
		out = append(out, st)
	}
	return out
}

// attributeTopStores spreads total over up to five distinct stores picked
// from stores by hashing key, so a node always names the same stores for
// the same store list. Counts are descending and sum to total.
func attributeTopStores(stores []models.Store, key string, total int) []dto.TopStore {
	stores = distinctStores(stores)
	n := min(topStoresPerNode, len(stores))
	if n == 0 {
		return []dto.TopStore{}
	}

	start := int(hashKey(key) % uint32(len(stores)))
	used := make([]bool, len(stores))

	out := make([]dto.TopStore, 0, n)
	remaining := total
	for i := 0; i < n; i++ {
		// stride 7, stepping past stores already picked; n <= len(stores)
		// so a free slot always exists
		idx := (start + i*7) % len(stores)
		for used[idx] {
			idx = (idx + 1) % len(stores)
		}
		used[idx] = true

		count := remaining
		if i < n-1 && i < len(topStoreShares) {
			count = int(float64(total) * topStoreShares[i])
		}
		remaining -= count

		out = append(out, dto.TopStore{
			StoreID:   stores[idx].ID,
			StoreName: stores[idx].Name,
			Count:     count,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func hashKey(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}

// jitter is a stable pseudo-random value in [0, n) derived from key.
func jitter(key string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(hashKey(key) % uint32(n))
}

func qscvLeaves(stores []models.Store, path string, nodes []qscvNode) []dto.QSCVTagL3 {
	out := make([]dto.QSCVTagL3, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, dto.QSCVTagL3{
			Name:      n.name,
			Count:     n.count,
			TopStores: attributeTopStores(stores, path+"/"+n.name, n.count),
		})
	}
	return out
}

func qscvL2(stores []models.Store, path string, nodes []qscvNode) []dto.QSCVTagL2 {
	out := make([]dto.QSCVTagL2, 0, len(nodes))
	for _, n := range nodes {
		key := path + "/" + n.name
		out = append(out, dto.QSCVTagL2{
			Name:      n.name,
			Count:     n.count,
			Children:  qscvLeaves(stores, key, n.children),
			TopStores: attributeTopStores(stores, key, n.count),
		})
	}
	return out
}

// QSCVTree is the full content-analysis complaint tree with offending
// stores drawn from stores.
func QSCVTree(stores []models.Store) []dto.QSCVTagL1 {
	out := make([]dto.QSCVTagL1, 0, len(qscvTree))
	for _, n := range qscvTree {
		out = append(out, dto.QSCVTagL1{
			Name:      n.name,
			Count:     n.count,
			Children:  qscvL2(stores, n.name, n.children),
			TopStores: attributeTopStores(stores, n.name, n.count),
		})
	}
	return out
}

func findQSCVNode(nodes []qscvNode, name string) (qscvNode, bool) {
	for _, n := range nodes {
		if n.name == name {
			return n, true
		}
	}
	return qscvNode{}, false
}

// QSCVChildren returns the L2 nodes under l1; false when l1 is unknown.
func QSCVChildren(stores []models.Store, l1 string) ([]dto.QSCVTagL2, bool) {
	node, ok := findQSCVNode(qscvTree, l1)
	if !ok {
		return []dto.QSCVTagL2{}, false
	}
	return qscvL2(stores, node.name, node.children), true
}

// QSCVLeaves returns the L3 nodes under l1/l2; false when either is unknown.
func QSCVLeaves(stores []models.Store, l1, l2 string) ([]dto.QSCVTagL3, bool) {
	parent, ok := findQSCVNode(qscvTree, l1)
	if !ok {
		return []dto.QSCVTagL3{}, false
	}
	node, ok := findQSCVNode(parent.children, l2)
	if !ok {
		return []dto.QSCVTagL3{}, false
	}
	return qscvLeaves(stores, l1+"/"+l2, node.children), true
}

func RegionalTagShares() []dto.RegionalTagShare {
	out := make([]dto.RegionalTagShare, 0, len(regionalTagShares))
	for _, t := range regionalTagShares {
		t.Children = slices.Clone(t.Children)
		out = append(out, t)
	}
	return out
}

func DimensionData() []dto.DimensionItem {
	return slices.Clone(dimensions)
}

// TagL2Data returns the L2 tags of dimension, empty when unknown.
func TagL2Data(dimension string) []dto.TagL2Item {
	items, ok := tagL2ByDimension[dimension]
	if !ok {
		return []dto.TagL2Item{}
	}
	return slices.Clone(items)
}

// TagL3Data returns the L3 tags under dimension/l2, empty when unknown.
func TagL3Data(dimension, l2 string) []dto.TagL3Item {
	items, ok := tagL3ByDimension[dimension][l2]
	if !ok {
		return []dto.TagL3Item{}
	}
	out := make([]dto.TagL3Item, 0, len(items))
	for _, it := range items {
		it.Stores = slices.Clone(it.Stores)
		out = append(out, it)
	}
	return out
}

// NegativeKeywordsByRegion returns the top complaint keywords of region,
// empty when the region is unknown.
func NegativeKeywordsByRegion(region string) []dto.WordCloudItem {
	items, ok := negativeKeywordsByRegion[models.Region(region)]
	if !ok {
		return []dto.WordCloudItem{}
	}
	return slices.Clone(items)
}
