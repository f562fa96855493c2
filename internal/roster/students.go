package roster

import "github.com/UnknownOlympus/campusmap/internal/models"

// students is the sample roster. Each city appears in the city coordinate table,
// but nothing enforces that.
var students = []models.Student{
	{Province: models.ProvinceBeijing, City: "北京市", Name: "张伟", University: "清华大学", Major: "计算机科学与技术"},
	{Province: models.ProvinceBeijing, City: "北京市", Name: "李娜", University: "北京大学", Major: "法学"},
	{Province: models.ProvinceShanghai, City: "上海市", Name: "王强", University: "复旦大学", Major: "经济学"},
	{Province: models.ProvinceShanghai, City: "上海市", Name: "赵敏", University: "上海交通大学", Major: "机械工程"},
	{Province: models.ProvinceGuangdong, City: "广州市", Name: "陈思", University: "中山大学", Major: "生物科学"},
	{Province: models.ProvinceGuangdong, City: "深圳市", Name: "林涛", University: "深圳大学", Major: "电子信息工程"},
	{Province: models.ProvinceJiangsu, City: "南京市", Name: "周洁", University: "南京大学", Major: "历史学"},
	{Province: models.ProvinceJiangsu, City: "苏州市", Name: "徐磊", University: "苏州大学", Major: "材料科学与工程"},
	{Province: models.ProvinceZhejiang, City: "杭州市", Name: "孙丽", University: "浙江大学", Major: "环境科学"},
	{Province: models.ProvinceShandong, City: "济南市", Name: "马超", University: "山东大学", Major: "数学"},
	{Province: models.ProvinceHubei, City: "武汉市", Name: "刘洋", University: "武汉大学", Major: "新闻传播学"},
	{Province: models.ProvinceHunan, City: "长沙市", Name: "唐雪", University: "中南大学", Major: "土木工程"},
	{Province: models.ProvinceSichuan, City: "成都市", Name: "何俊", University: "四川大学", Major: "临床医学"},
	{Province: models.ProvinceLiaoning, City: "沈阳市", Name: "高峰", University: "东北大学", Major: "冶金工程"},
	{Province: models.ProvinceJilin, City: "长春市", Name: "吴婷", University: "吉林大学", Major: "化学"},
	{Province: models.ProvinceHeilongjiang, City: "哈尔滨市", Name: "宋明", University: "哈尔滨工业大学", Major: "航天工程"},
	{Province: models.ProvinceChongqing, City: "重庆市", Name: "杨帆", University: "重庆大学", Major: "建筑学"},
	{Province: models.ProvinceAnhui, City: "合肥市", Name: "许静", University: "中国科学技术大学", Major: "物理学"},
	{Province: models.ProvinceFujian, City: "厦门市", Name: "邓凯", University: "厦门大学", Major: "会计学"},
	{Province: models.ProvinceJiangxi, City: "南昌市", Name: "罗丹", University: "南昌大学", Major: "软件工程"},
	{Province: models.ProvinceHebei, City: "石家庄市", Name: "崔琳", University: "河北大学", Major: "英语"},
	{Province: models.ProvinceShanxi, City: "太原市", Name: "郭亮", University: "山西大学", Major: "地理科学"},
	{Province: models.ProvinceYunnan, City: "昆明市", Name: "李欣", University: "云南大学", Major: "生态学"},
	{Province: models.ProvinceGuizhou, City: "贵阳市", Name: "潘涛", University: "贵州大学", Major: "食品科学与工程"},
	{Province: models.ProvinceHainan, City: "海口市", Name: "郑丽", University: "海南大学", Major: "旅游管理"},
	{Province: models.ProvinceGansu, City: "兰州市", Name: "韩雪", University: "兰州大学", Major: "大气科学"},
	{Province: models.ProvinceQinghai, City: "西宁市", Name: "马志", University: "青海大学", Major: "水利工程"},
	{Province: models.ProvinceInnerMongol, City: "呼和浩特市", Name: "包娜", University: "内蒙古大学", Major: "草业科学"},
	{Province: models.ProvinceGuangxi, City: "南宁市", Name: "韦明", University: "广西大学", Major: "民族学"},
	{Province: models.ProvinceXinjiang, City: "乌鲁木齐市", Name: "阿不都", University: "新疆大学", Major: "资源勘查工程"},
	{Province: models.ProvinceHongKong, City: "香港", Name: "陈嘉欣", University: "香港大学", Major: "金融学"},
}
