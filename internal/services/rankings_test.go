package services

import (
	"reflect"
	"strings"
	"testing"

	"github.com/GregMSThompson/review-dashboard/internal/models"
)

func TestRegionRankings(t *testing.T) {
	got := RegionRankings()
	if len(got) != len(models.Regions) {
		t.Fatalf("expected %d regions, got %d", len(models.Regions), len(got))
	}
	for i, r := range got {
		if r.NationalRank != i+1 {
			t.Fatalf("rank %d at position %d", r.NationalRank, i)
		}
		if i > 0 && got[i-1].NegativePerTenThousand > r.NegativePerTenThousand {
			t.Fatalf("not ascending at %d: %v", i, got)
		}
		if r.RankChange < -2 || r.RankChange > 1 {
			t.Fatalf("rank change %d out of range", r.RankChange)
		}
	}
	if got[0].Name != string(models.RegionEast) || got[0].NegativePerTenThousand != 0.82 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	if !reflect.DeepEqual(got, RegionRankings()) {
		t.Fatal("region rankings are not stable")
	}
}

func TestRankingHierarchy(t *testing.T) {
	for ri, region := range models.Regions {
		groups, ok := SupervisorGroupRankings(string(region))
		if !ok || len(groups) != len(supervisorGroupsByRegion[region]) {
			t.Fatalf("%s: ok=%v groups=%d", region, ok, len(groups))
		}
		for gi, g := range groups {
			if g.RegionalRank != gi+1 || g.NationalRank != ri*groupRankStride+gi+1 {
				t.Fatalf("%s: bad ranks %+v", g.Name, g)
			}
			if gi > 0 && groups[gi-1].NegativePerTenThousand > g.NegativePerTenThousand {
				t.Fatalf("%s: groups not ascending", region)
			}

			supervisors, ok := SupervisorRankings(string(region), g.Name)
			if !ok || len(supervisors) != g.SupervisorCount {
				t.Fatalf("%s: ok=%v supervisors=%d want %d", g.Name, ok, len(supervisors), g.SupervisorCount)
			}
			for si, sup := range supervisors {
				if sup.GroupRank != si+1 || sup.NationalRank != ri*supervisorRankStride+si+1 {
					t.Fatalf("%s/%s: bad ranks %+v", g.Name, sup.Name, sup)
				}

				stores, ok := StoreRankings(string(region), g.Name, sup.Name)
				if !ok || len(stores) != sup.StoreCount {
					t.Fatalf("%s/%s: ok=%v stores=%d want %d", g.Name, sup.Name, ok, len(stores), sup.StoreCount)
				}
				for sti, st := range stores {
					if st.SupervisorRank != sti+1 || st.NationalRank != ri*storeRankStride+sti+1 {
						t.Fatalf("%s: bad ranks %+v", st.Name, st)
					}
					if st.AvgRating > 4.8 || st.AvgRating < 4.0 {
						t.Fatalf("%s: avg rating %v", st.Name, st.AvgRating)
					}
					if sti > 0 && stores[sti-1].NegativePerTenThousand > st.NegativePerTenThousand {
						t.Fatalf("%s/%s: stores not ascending", g.Name, sup.Name)
					}
				}
			}
		}
	}
}

func TestRankingStoreNames(t *testing.T) {
	stores, ok := StoreRankings("华东", "杭州督导组", "张三")
	if !ok || len(stores) < 2 {
		t.Fatalf("ok=%v stores=%v", ok, stores)
	}
	for _, st := range stores {
		if !strings.HasPrefix(st.Name, "杭州") {
			t.Fatalf("store %q not named after its city", st.Name)
		}
	}

	again, _ := StoreRankings("华东", "杭州督导组", "张三")
	if !reflect.DeepEqual(stores, again) {
		t.Fatal("store rankings are not stable")
	}
}

func TestRankingUnknownNodes(t *testing.T) {
	if out, ok := SupervisorGroupRankings("火星"); ok || len(out) != 0 {
		t.Fatalf("unknown region: ok=%v out=%v", ok, out)
	}
	if _, ok := SupervisorRankings("华东", "北京督导组"); ok {
		t.Fatal("group from another region should be unknown")
	}
	if _, ok := StoreRankings("华东", "上海督导组", "孙八"); ok {
		t.Fatal("unknown supervisor should be reported")
	}
}
