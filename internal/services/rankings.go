package services

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

// Canned complaint ranking hierarchy: region, supervisor group, supervisor,
// store. Every level is ranked by negative reviews per ten thousand orders,
// lowest first. Values below the region level are derived from the node's
// path so a node always reports the same numbers.

type regionRankingRow struct {
	region        models.Region
	perTenK       float64
	negativeCount int
	storeCount    int
}

var regionRankingRows = []regionRankingRow{
	{models.RegionEast, 0.82, 156, 85},
	{models.RegionNorth, 0.95, 142, 62},
	{models.RegionSouth, 1.05, 168, 58},
	{models.RegionCentral, 1.12, 138, 48},
	{models.RegionSouthwest, 1.25, 155, 42},
	{models.RegionNortheast, 1.38, 175, 33},
}

var supervisorGroupsByRegion = map[models.Region][]string{
	models.RegionEast:      {"上海督导组", "杭州督导组", "南京督导组", "苏州督导组", "宁波督导组"},
	models.RegionNorth:     {"北京督导组", "天津督导组", "石家庄督导组", "太原督导组"},
	models.RegionSouth:     {"广州督导组", "深圳督导组", "东莞督导组", "佛山督导组"},
	models.RegionCentral:   {"武汉督导组", "长沙督导组", "郑州督导组", "南昌督导组"},
	models.RegionSouthwest: {"成都督导组", "重庆督导组", "昆明督导组", "贵阳督导组"},
	models.RegionNortheast: {"沈阳督导组", "大连督导组", "哈尔滨督导组"},
}

var supervisorNames = []string{"张三", "李四", "王五", "赵六", "钱七"}

var rankingStoreSuffixes = []string{
	"旗舰店", "万达店", "银泰店", "吾悦店", "龙湖店",
	"印象城店", "来福士店", "大悦城店", "华润店", "宝龙店",
}

// national rank offsets per region index at each level
const (
	groupRankStride      = 5
	supervisorRankStride = 20
	storeRankStride      = 30
)

func rankingRegionIndex(region string) int {
	for i, r := range models.Regions {
		if string(r) == region {
			return i
		}
	}
	return -1
}

func rankingGroups(region string) ([]string, bool) {
	groups, ok := supervisorGroupsByRegion[models.Region(region)]
	return groups, ok
}

func rankingSupervisors(region, group string) ([]string, bool) {
	groups, ok := rankingGroups(region)
	if !ok || !slices.Contains(groups, group) {
		return nil, false
	}
	n := 3 + jitter(region+"/"+group+"/supervisors", 2)
	return supervisorNames[:n], true
}

func rankingStores(region, group, supervisor string) ([]string, bool) {
	supervisors, ok := rankingSupervisors(region, group)
	if !ok || !slices.Contains(supervisors, supervisor) {
		return nil, false
	}
	n := 2 + jitter(region+"/"+group+"/"+supervisor+"/stores", 3)
	city := strings.TrimSuffix(group, "督导组")
	out := make([]string, 0, n)
	for _, suffix := range rankingStoreSuffixes[:n] {
		out = append(out, city+suffix)
	}
	return out, true
}

// spread is a stable fraction in [0, n/100) derived from key.
func spread(key string, n int) float64 {
	return float64(jitter(key, n)) / 100
}

func RegionRankings() []dto.RegionRanking {
	rows := slices.Clone(regionRankingRows)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].perTenK < rows[j].perTenK })

	out := make([]dto.RegionRanking, 0, len(rows))
	for i, r := range rows {
		out = append(out, dto.RegionRanking{
			ID:                     fmt.Sprintf("region_%d", rankingRegionIndex(string(r.region))),
			Name:                   string(r.region),
			NationalRank:           i + 1,
			RankChange:             jitter(string(r.region)+"/change", 4) - 2,
			NegativePerTenThousand: r.perTenK,
			NegativeCount:          r.negativeCount,
			StoreCount:             r.storeCount,
		})
	}
	return out
}

// SupervisorGroupRankings ranks the supervisor groups of region; false when
// the region is unknown.
func SupervisorGroupRankings(region string) ([]dto.SupervisorGroupRanking, bool) {
	groups, ok := rankingGroups(region)
	if !ok {
		return []dto.SupervisorGroupRanking{}, false
	}

	out := make([]dto.SupervisorGroupRanking, 0, len(groups))
	for i, name := range groups {
		key := region + "/" + name
		supervisors, _ := rankingSupervisors(region, name)
		out = append(out, dto.SupervisorGroupRanking{
			ID:                     fmt.Sprintf("group_%s_%d", region, i),
			Name:                   name,
			Region:                 region,
			RankChange:             jitter(key+"/change", 6) - 3,
			NegativePerTenThousand: round2(0.75 + float64(i)*0.12 + spread(key+"/rate", 20)),
			NegativeCount:          25 + i*8 + jitter(key+"/count", 15),
			SupervisorCount:        len(supervisors),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NegativePerTenThousand < out[j].NegativePerTenThousand
	})
	base := rankingRegionIndex(region) * groupRankStride
	for i := range out {
		out[i].RegionalRank = i + 1
		out[i].NationalRank = base + i + 1
	}
	return out, true
}

// SupervisorRankings ranks the supervisors of region/group; false when
// either is unknown.
func SupervisorRankings(region, group string) ([]dto.SupervisorRanking, bool) {
	supervisors, ok := rankingSupervisors(region, group)
	if !ok {
		return []dto.SupervisorRanking{}, false
	}

	out := make([]dto.SupervisorRanking, 0, len(supervisors))
	for i, name := range supervisors {
		key := region + "/" + group + "/" + name
		stores, _ := rankingStores(region, group, name)
		out = append(out, dto.SupervisorRanking{
			ID:                     fmt.Sprintf("supervisor_%s_%s_%d", region, group, i),
			Name:                   name,
			Group:                  group,
			Region:                 region,
			RankChange:             jitter(key+"/change", 6) - 3,
			NegativePerTenThousand: round2(0.70 + float64(i)*0.15 + spread(key+"/rate", 25)),
			NegativeCount:          15 + i*5 + jitter(key+"/count", 10),
			StoreCount:             len(stores),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NegativePerTenThousand < out[j].NegativePerTenThousand
	})
	base := rankingRegionIndex(region) * supervisorRankStride
	for i := range out {
		out[i].GroupRank = i + 1
		out[i].RegionalRank = i + 1
		out[i].NationalRank = base + i + 1
	}
	return out, true
}

// StoreRankings ranks the stores under region/group/supervisor; false when
// any level is unknown.
func StoreRankings(region, group, supervisor string) ([]dto.StoreRanking, bool) {
	stores, ok := rankingStores(region, group, supervisor)
	if !ok {
		return []dto.StoreRanking{}, false
	}

	out := make([]dto.StoreRanking, 0, len(stores))
	for i, name := range stores {
		key := region + "/" + group + "/" + supervisor + "/" + name
		out = append(out, dto.StoreRanking{
			ID:                     fmt.Sprintf("store_%s_%s_%s_%d", region, group, supervisor, i),
			Name:                   name,
			Supervisor:             supervisor,
			Group:                  group,
			Region:                 region,
			RankChange:             jitter(key+"/change", 8) - 4,
			NegativePerTenThousand: round2(0.65 + float64(i)*0.15 + spread(key+"/rate", 25)),
			NegativeCount:          8 + i*3 + jitter(key+"/count", 8),
			AvgRating:              round2(4.8 - float64(i)*0.08 - spread(key+"/rating", 20)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NegativePerTenThousand < out[j].NegativePerTenThousand
	})
	base := rankingRegionIndex(region) * storeRankStride
	for i := range out {
		out[i].SupervisorRank = i + 1
		out[i].GroupRank = i + 1
		out[i].RegionalRank = i + 1
		out[i].NationalRank = base + i + 1
	}
	return out, true
}
