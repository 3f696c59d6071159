package services

import (
	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

// Canned drill-down tables. None of these are derived from reviews.

type qscvNode struct {
	name     string
	count    int
	children []qscvNode
}

var qscvTree = []qscvNode{
	{"口味", 450, []qscvNode{
		{"味道", 280, []qscvNode{{"太咸", 120, nil}, {"太淡", 85, nil}, {"不新鲜", 75, nil}}},
		{"菜品质量", 170, []qscvNode{{"分量不足", 90, nil}, {"卖相差", 80, nil}}},
	}},
	{"服务", 320, []qscvNode{
		{"服务态度", 180, []qscvNode{{"服务员玩手机", 120, nil}, {"叫不应", 60, nil}}},
		{"上菜速度", 140, []qscvNode{{"等待时间过长", 95, nil}, {"上菜顺序混乱", 45, nil}}},
	}},
	{"环境", 180, []qscvNode{
		{"卫生状况", 110, []qscvNode{{"桌面脏", 65, nil}, {"地面油腻", 45, nil}}},
		{"就餐环境", 70, []qscvNode{{"太吵", 40, nil}, {"空调温度不适", 30, nil}}},
	}},
	{"性价比", 150, []qscvNode{
		{"价格", 100, []qscvNode{{"价格虚高", 70, nil}, {"团购不实惠", 30, nil}}},
		{"优惠活动", 50, []qscvNode{{"活动规则复杂", 30, nil}, {"优惠力度小", 20, nil}}},
	}},
}

var regionalTagShares = []dto.RegionalTagShare{
	{Name: "Q-品质", Count: 520, Percentage: 41.4, Children: []dto.RegionalTagShare{
		{Name: "食材新鲜度", Count: 180, Percentage: 34.6},
		{Name: "口味问题", Count: 150, Percentage: 28.8},
		{Name: "菜品温度", Count: 110, Percentage: 21.2},
		{Name: "分量不足", Count: 80, Percentage: 15.4},
	}},
	{Name: "S-服务", Count: 380, Percentage: 30.2, Children: []dto.RegionalTagShare{
		{Name: "服务态度", Count: 160, Percentage: 42.1},
		{Name: "上菜速度", Count: 120, Percentage: 31.6},
		{Name: "点餐问题", Count: 60, Percentage: 15.8},
		{Name: "结账问题", Count: 40, Percentage: 10.5},
	}},
	{Name: "C-清洁", Count: 220, Percentage: 17.5, Children: []dto.RegionalTagShare{
		{Name: "餐具卫生", Count: 90, Percentage: 40.9},
		{Name: "环境整洁", Count: 70, Percentage: 31.8},
		{Name: "异物问题", Count: 60, Percentage: 27.3},
	}},
	{Name: "V-价值", Count: 136, Percentage: 10.8, Children: []dto.RegionalTagShare{
		{Name: "性价比低", Count: 80, Percentage: 58.8},
		{Name: "优惠问题", Count: 36, Percentage: 26.5},
		{Name: "会员权益", Count: 20, Percentage: 14.7},
	}},
}

var dimensions = []dto.DimensionItem{
	{Dimension: "商品", PositiveCount: 85, NegativeCount: 45},
	{Dimension: "环境", PositiveCount: 60, NegativeCount: 35},
	{Dimension: "服务", PositiveCount: 40, NegativeCount: 55},
	{Dimension: "配送", PositiveCount: 30, NegativeCount: 25},
}

var tagL2ByDimension = map[string][]dto.TagL2Item{
	"商品": {
		{Name: "口味", PositiveCount: 45, NegativeCount: 15},
		{Name: "新鲜度", PositiveCount: 25, NegativeCount: 20},
		{Name: "分量", PositiveCount: 15, NegativeCount: 10},
	},
	"环境": {
		{Name: "卫生", PositiveCount: 30, NegativeCount: 20},
		{Name: "氛围", PositiveCount: 20, NegativeCount: 10},
		{Name: "设施", PositiveCount: 10, NegativeCount: 5},
	},
	"服务": {
		{Name: "态度", PositiveCount: 20, NegativeCount: 30},
		{Name: "效率", PositiveCount: 15, NegativeCount: 20},
		{Name: "专业度", PositiveCount: 5, NegativeCount: 5},
	},
	"配送": {
		{Name: "速度", PositiveCount: 15, NegativeCount: 15},
		{Name: "包装", PositiveCount: 10, NegativeCount: 8},
		{Name: "准确性", PositiveCount: 5, NegativeCount: 2},
	},
}

// keyed by dimension then L2 tag
var tagL3ByDimension = map[string]map[string][]dto.TagL3Item{
	"服务": {
		"态度": {
			{Name: "服务员态度差", Count: 18, Stores: []dto.TopStore{
				{StoreID: "STORE0020", StoreName: "南京西路店", Count: 5},
				{StoreID: "STORE0021", StoreName: "徐家汇店", Count: 4},
				{StoreID: "STORE0022", StoreName: "人民广场店", Count: 3},
			}},
			{Name: "不理睬顾客", Count: 8, Stores: []dto.TopStore{
				{StoreID: "STORE0010", StoreName: "长春店", Count: 3},
				{StoreID: "STORE0011", StoreName: "大连店", Count: 2},
			}},
			{Name: "态度冷漠", Count: 4, Stores: []dto.TopStore{
				{StoreID: "STORE0012", StoreName: "吉林店", Count: 2},
			}},
		},
		"效率": {
			{Name: "上菜太慢", Count: 12, Stores: []dto.TopStore{
				{StoreID: "STORE0020", StoreName: "南京西路店", Count: 4},
			}},
			{Name: "等位时间长", Count: 8, Stores: []dto.TopStore{
				{StoreID: "STORE0021", StoreName: "徐家汇店", Count: 3},
			}},
		},
	},
	"商品": {
		"口味": {
			{Name: "太咸", Count: 10, Stores: []dto.TopStore{
				{StoreID: "STORE0001", StoreName: "哈尔滨门店", Count: 3},
			}},
			{Name: "不新鲜", Count: 5, Stores: []dto.TopStore{
				{StoreID: "STORE0002", StoreName: "沈阳路门店", Count: 2},
			}},
		},
	},
}

var negativeKeywordsByRegion = map[models.Region][]dto.WordCloudItem{
	models.RegionEast: {
		{Name: "上菜慢", Value: 156}, {Name: "服务态度差", Value: 134}, {Name: "口味不佳", Value: 98},
		{Name: "分量少", Value: 87}, {Name: "价格贵", Value: 76}, {Name: "环境脏", Value: 65},
		{Name: "等位久", Value: 58}, {Name: "菜品凉了", Value: 52}, {Name: "有异物", Value: 45},
		{Name: "餐具不干净", Value: 38},
	},
	models.RegionNorth: {
		{Name: "服务态度差", Value: 142}, {Name: "上菜慢", Value: 128}, {Name: "分量少", Value: 105},
		{Name: "口味咸", Value: 92}, {Name: "环境吵", Value: 78}, {Name: "价格贵", Value: 68},
		{Name: "空调不足", Value: 55}, {Name: "停车难", Value: 48}, {Name: "餐具破损", Value: 42},
		{Name: "菜品不新鲜", Value: 35},
	},
	models.RegionSouth: {
		{Name: "口味偏咸", Value: 168}, {Name: "上菜慢", Value: 145}, {Name: "空调太冷", Value: 112},
		{Name: "服务冷淡", Value: 98}, {Name: "分量少", Value: 85}, {Name: "价格虚高", Value: 72},
		{Name: "等位久", Value: 62}, {Name: "卫生差", Value: 55}, {Name: "噪音大", Value: 48},
		{Name: "菜品油腻", Value: 42},
	},
	models.RegionCentral: {
		{Name: "服务慢", Value: 138}, {Name: "口味淡", Value: 125}, {Name: "上菜慢", Value: 108},
		{Name: "环境差", Value: 92}, {Name: "分量不足", Value: 78}, {Name: "价格不合理", Value: 65},
		{Name: "态度冷漠", Value: 58}, {Name: "位置难找", Value: 45}, {Name: "菜品凉", Value: 38},
		{Name: "餐具脏", Value: 32},
	},
	models.RegionSouthwest: {
		{Name: "不够辣", Value: 155}, {Name: "上菜慢", Value: 132}, {Name: "服务差", Value: 118},
		{Name: "口味不正宗", Value: 95}, {Name: "价格贵", Value: 82}, {Name: "分量少", Value: 68},
		{Name: "环境嘈杂", Value: 55}, {Name: "等位时间长", Value: 48}, {Name: "菜品油", Value: 42},
		{Name: "卫生问题", Value: 35},
	},
	models.RegionNortheast: {
		{Name: "分量太少", Value: 175}, {Name: "服务态度", Value: 148}, {Name: "上菜速度", Value: 125},
		{Name: "口味偏淡", Value: 102}, {Name: "价格高", Value: 88}, {Name: "环境一般", Value: 72},
		{Name: "菜品凉", Value: 58}, {Name: "暖气不足", Value: 52}, {Name: "停车不便", Value: 45},
		{Name: "餐具问题", Value: 38},
	},
}

var positiveWordCloud = []dto.WordCloudItem{
	{Name: "好吃", Value: 850}, {Name: "新鲜", Value: 720}, {Name: "美味", Value: 680},
	{Name: "热情", Value: 620}, {Name: "干净", Value: 580}, {Name: "实惠", Value: 520},
	{Name: "快速", Value: 480}, {Name: "推荐", Value: 450}, {Name: "满意", Value: 420},
	{Name: "周到", Value: 380}, {Name: "不错", Value: 350}, {Name: "优秀", Value: 320},
	{Name: "赞", Value: 300}, {Name: "棒", Value: 280}, {Name: "服务好", Value: 260},
	{Name: "环境好", Value: 240},
}

var negativeWordCloud = []dto.WordCloudItem{
	{Name: "慢", Value: 320}, {Name: "贵", Value: 280}, {Name: "态度差", Value: 250},
	{Name: "脏", Value: 220}, {Name: "难吃", Value: 200}, {Name: "不新鲜", Value: 180},
	{Name: "等太久", Value: 160}, {Name: "失望", Value: 140}, {Name: "不卫生", Value: 120},
	{Name: "服务差", Value: 110}, {Name: "变质", Value: 95}, {Name: "异物", Value: 85},
	{Name: "拉肚子", Value: 75}, {Name: "坑", Value: 65}, {Name: "差评", Value: 55},
}
