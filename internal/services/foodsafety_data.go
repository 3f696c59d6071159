package services

import "github.com/GregMSThompson/review-dashboard/internal/dto"

// Canned food-safety tables.

var foodSafetyKeywords = []dto.KeywordCount{
	{Keyword: "异物", Count: 156},
	{Keyword: "拉肚子", Count: 128},
	{Keyword: "变质", Count: 95},
	{Keyword: "过期", Count: 87},
	{Keyword: "头发", Count: 76},
	{Keyword: "虫子", Count: 68},
	{Keyword: "不新鲜", Count: 54},
	{Keyword: "食物中毒", Count: 45},
	{Keyword: "腹泻", Count: 42},
	{Keyword: "发霉", Count: 38},
}

// SafetyMarkets is the market enumeration in display order.
var SafetyMarkets = []string{
	"东北市场", "华南市场", "华中市场", "京津市场", "山东市场",
	"上海市场", "苏皖市场", "西南市场", "浙江市场",
}

var marketKeywordSets = map[string][]string{
	"东北市场": {"异物", "不新鲜", "过期", "头发", "变质"},
	"华南市场": {"拉肚子", "变质", "虫子", "异物", "发霉"},
	"华中市场": {"异物", "过期", "头发", "拉肚子", "不新鲜"},
	"京津市场": {"头发", "异物", "变质", "过期", "腹泻"},
	"山东市场": {"过期", "异物", "不新鲜", "虫子", "拉肚子"},
	"上海市场": {"异物", "拉肚子", "变质", "食物中毒", "头发"},
	"苏皖市场": {"变质", "异物", "过期", "发霉", "拉肚子"},
	"西南市场": {"拉肚子", "不新鲜", "异物", "变质", "虫子"},
	"浙江市场": {"异物", "头发", "过期", "变质", "腹泻"},
}

var blacklistStoreNames = []string{
	"朝阳门店", "西单店", "国贸店", "望京店", "中关村店",
	"徐汇店", "浦东店", "静安店", "虹口店", "杨浦店",
	"天河店", "海珠店", "越秀店", "番禺店", "白云店",
	"武昌店", "汉口店", "光谷店", "江汉店", "洪山店",
	"下沙店", "滨江店", "西湖店", "萧山店", "余杭店",
	"新街口店", "鼓楼店", "玄武店", "江宁店", "秦淮店",
	"历下店", "市中店", "槐荫店", "天桥店", "历城店",
	"和平店", "沈河店", "皇姑店", "大东店", "铁西店",
	"锦江店", "武侯店", "青羊店", "金牛店", "成华店",
}

var voiceStoreNames = []string{
	"朝阳门店", "西单店", "国贸店", "望京店", "中关村店",
	"徐汇店", "浦东店", "天河店", "海珠店", "下沙店",
}

var voicePlatforms = []string{"美团", "大众点评", "饿了么"}

var voiceTemplates = map[string][]string{
	"异物": {
		"菜里面吃出了一块塑料片，太恶心了！",
		"今天吃到异物了，是一小块不明物体，影响食欲",
		"汤里发现了异物，不知道是什么东西",
		"吃到一半发现盘子里有异物，直接不想吃了",
		"菜品里有异物，要求退款商家态度还不好",
	},
	"拉肚子": {
		"吃完之后肚子不舒服，跑了好几趟厕所",
		"晚上吃的，第二天一直拉肚子",
		"全家人都拉肚子了，怀疑食材有问题",
		"吃完不到两小时就开始肚子疼，拉了好几次",
		"应该是食物不干净，吃完就拉肚子了",
	},
	"变质": {
		"肉闻起来有异味，应该是变质了",
		"蔬菜都蔫了，明显不新鲜已经变质",
		"酱料有股酸味，感觉已经变质了",
		"米饭吃起来怪怪的，可能放太久变质了",
		"鸡蛋散开了，应该是变质的蛋",
	},
	"过期": {
		"检查了一下调料包，发现已经过期了",
		"饮料的生产日期太久了，都快过期了",
		"包装上的日期显示已经过期一周了",
		"牛奶明显过期了，喝起来有酸味",
		"食材看起来不新鲜，可能用了过期的原料",
	},
	"头发": {
		"菜里吃出一根头发，太恶心了！",
		"汤面里面有一根长头发",
		"沙拉里发现了头发，直接没法吃了",
		"吃到一半发现有头发，影响心情",
		"又是头发！这家店卫生太差了",
	},
	"虫子": {
		"青菜里有虫子，吓死我了！",
		"发现有小虫子在菜上爬",
		"蔬菜没洗干净，吃出了虫子",
		"水果里面有虫洞，明显有虫子",
		"点的菜里有虫子，店员态度还不好",
	},
	"不新鲜": {
		"海鲜明显不新鲜，有腥臭味",
		"蔬菜都蔫了，一看就不新鲜",
		"肉质发暗，吃起来口感也不好，不新鲜",
		"水果都软了，肯定放了好几天了",
		"鱼不新鲜，眼睛都浑浊了",
	},
	"食物中毒": {
		"吃完后上吐下泻，可能是食物中毒",
		"全家都不舒服，怀疑食物中毒",
		"吃完后发烧呕吐，去医院说是食物中毒",
		"症状很像食物中毒，已经投诉了",
		"吃完之后肠胃炎，医生说可能是食物中毒",
	},
	"腹泻": {
		"吃完当晚就开始腹泻",
		"持续腹泻，应该是吃这家造成的",
		"腹泻了一整天，太难受了",
		"严重腹泻，不得不去医院",
		"吃完后腹泻，之前没有肠胃问题",
	},
	"发霉": {
		"面包上有发霉的痕迹",
		"酱料打开一看发霉了",
		"水果切开后发现里面发霉了",
		"食材明显发霉了还在用",
		"馒头底部有霉斑，太可怕了",
	},
}
