package sampledata

import "github.com/GregMSThompson/review-dashboard/internal/models"

type cityInfo struct {
	City     models.City
	Province models.Province
}

type regionCities struct {
	Region models.Region
	Cities []cityInfo
}

// citiesByRegion is ordered so store ids are assigned region by region.
var citiesByRegion = []regionCities{
	{models.RegionEast, []cityInfo{
		{"上海市", models.ProvinceShanghai},
		{"杭州市", models.ProvinceZhejiang},
		{"南京市", models.ProvinceJiangsu},
		{"苏州市", models.ProvinceJiangsu},
	}},
	{models.RegionNorth, []cityInfo{
		{"北京市", models.ProvinceBeijing},
		{"天津市", models.ProvinceHebei},
		{"石家庄市", models.ProvinceHebei},
	}},
	{models.RegionSouth, []cityInfo{
		{"广州市", models.ProvinceGuangdong},
		{"深圳市", models.ProvinceGuangdong},
		{"福州市", models.ProvinceFujian},
		{"厦门市", models.ProvinceFujian},
	}},
	{models.RegionCentral, []cityInfo{
		{"武汉市", models.ProvinceHubei},
		{"长沙市", models.ProvinceHunan},
	}},
	{models.RegionSouthwest, []cityInfo{
		{"成都市", models.ProvinceSichuan},
		{"重庆市", models.ProvinceSichuan},
	}},
	{models.RegionNortheast, []cityInfo{
		{"沈阳市", models.ProvinceLiaoning},
		{"哈尔滨市", models.ProvinceHeilongjiang},
	}},
}

// CitiesOf returns the cities generated for region, in order.
func CitiesOf(region models.Region) []models.City {
	for _, rc := range citiesByRegion {
		if rc.Region != region {
			continue
		}
		out := make([]models.City, 0, len(rc.Cities))
		for _, c := range rc.Cities {
			out = append(out, c.City)
		}
		return out
	}
	return nil
}

// IsCity reports whether v is one of the generated cities.
func IsCity(v string) bool {
	for _, rc := range citiesByRegion {
		for _, c := range rc.Cities {
			if string(c.City) == v {
				return true
			}
		}
	}
	return false
}

var flagshipCities = map[models.City]bool{
	"上海市": true,
	"北京市": true,
}

var storeNames = []string{
	"蜀香人家",
	"湘味小厨",
	"粤品轩",
	"江南小馆",
	"老北京炸酱面",
	"鲜之味火锅",
	"一品烤肉",
	"东北饺子王",
	"渝味串串香",
	"和风日料",
	"小笼包铺",
	"麻辣香锅坊",
}

var addressDirections = []string{"中心", "东", "西", "南", "北"}

var positiveKeywords = []string{
	"好吃", "新鲜", "美味", "热情", "干净", "实惠",
	"快速", "推荐", "满意", "周到", "服务好", "环境好",
}

var negativeKeywords = []string{
	"慢", "贵", "态度差", "脏", "难吃",
	"不新鲜", "等太久", "失望", "不卫生", "服务差",
}

// neutralTags are attached to every mid-rating review. Tag rankings that
// look for real issues skip them.
var neutralTags = []string{"一般", "中规中矩"}

var positiveTemplates = []string{
	"菜品很好吃，服务也很热情，下次还会再来！",
	"食材新鲜，味道地道，性价比很高。",
	"环境干净整洁，上菜速度快，非常满意。",
	"朋友推荐来的，果然没有失望，强烈推荐！",
	"服务员很周到，菜量足，味道也不错。",
}

var neutralTemplates = []string{
	"味道还可以，就是等位时间有点长。",
	"整体中规中矩，没有特别惊艳的地方。",
	"价格偏高，口味一般，环境还行。",
	"菜品正常水平，服务态度一般。",
}

var negativeTemplates = []string{
	"菜里吃出了异物，非常影响心情，希望商家重视。",
	"吃完以后肚子不舒服，怀疑食材不新鲜。",
	"服务员态度很差，叫了好几次都没人理。",
	"桌面很脏，地面油腻，卫生状况堪忧。",
	"上菜太慢，等了一个小时，菜还是凉的。",
	"菜品分量很少，味道也一般，不会再来了。",
}

const replyText = "感谢您的反馈，我们会持续改进服务质量，期待您的再次光临！"

// IsNeutralTag reports whether tag is a mid-rating placeholder rather than
// a real praise or complaint.
func IsNeutralTag(tag string) bool {
	for _, t := range neutralTags {
		if t == tag {
			return true
		}
	}
	return false
}
