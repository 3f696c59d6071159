package models

// FilterAll is the sentinel selector value meaning "no restriction".
const FilterAll = "all"

type Region string

const (
	RegionEast      Region = "华东"
	RegionNorth     Region = "华北"
	RegionSouth     Region = "华南"
	RegionCentral   Region = "华中"
	RegionSouthwest Region = "西南"
	RegionNortheast Region = "东北"
)

// Regions is the fixed region enumeration in display order.
var Regions = []Region{RegionEast, RegionNorth, RegionSouth, RegionCentral, RegionSouthwest, RegionNortheast}

type Province string

const (
	ProvinceZhejiang     Province = "浙江"
	ProvinceJiangsu      Province = "江苏"
	ProvinceShanghai     Province = "上海"
	ProvinceBeijing      Province = "北京"
	ProvinceHebei        Province = "河北"
	ProvinceGuangdong    Province = "广东"
	ProvinceFujian       Province = "福建"
	ProvinceHubei        Province = "湖北"
	ProvinceHunan        Province = "湖南"
	ProvinceSichuan      Province = "四川"
	ProvinceLiaoning     Province = "辽宁"
	ProvinceHeilongjiang Province = "黑龙江"
)

type City string

type Group string

// Groups are the supervisor/operations groups a filter may select.
var Groups = []Group{"教练1组", "教练2组", "教练3组", "督导1组", "督导2组", "运营1组", "运营2组"}

type Channel string

const (
	ChannelMeituan  Channel = "美团"
	ChannelEleme    Channel = "饿了么"
	ChannelDianping Channel = "大众点评"
)

var Channels = []Channel{ChannelMeituan, ChannelEleme, ChannelDianping}

// RiskCategory classifies a low-rating review as a food-safety incident.
type RiskCategory string

const (
	RiskForeignObject RiskCategory = "异物"
	RiskDiarrhea      RiskCategory = "腹泻"
	RiskSpoiled       RiskCategory = "变质"
	RiskService       RiskCategory = "服务"
	RiskEnvironment   RiskCategory = "环境"
	RiskDishQuality   RiskCategory = "菜品质量"
)

var RiskCategories = []RiskCategory{
	RiskForeignObject, RiskDiarrhea, RiskSpoiled, RiskService, RiskEnvironment, RiskDishQuality,
}

func IsRegion(v string) bool {
	for _, r := range Regions {
		if string(r) == v {
			return true
		}
	}
	return false
}

func IsChannel(v string) bool {
	for _, c := range Channels {
		if string(c) == v {
			return true
		}
	}
	return false
}

func IsGroup(v string) bool {
	for _, g := range Groups {
		if string(g) == v {
			return true
		}
	}
	return false
}
