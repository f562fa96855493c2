package citydata

import "github.com/UnknownOlympus/campusmap/internal/models"

// cityCoordinates covers the cities referenced by the student roster.
var cityCoordinates = []models.CityCoordinate{
	// Municipalities
	{Name: "北京市", Province: "北京", Lng: 116.4074, Lat: 39.9042},
	{Name: "上海市", Province: "上海", Lng: 121.4737, Lat: 31.2304},
	{Name: "重庆市", Province: "重庆", Lng: 106.5516, Lat: 29.5630},

	{Name: "广州市", Province: "广东", Lng: 113.2644, Lat: 23.1291},
	{Name: "深圳市", Province: "广东", Lng: 114.0579, Lat: 22.5431},

	{Name: "南京市", Province: "江苏", Lng: 118.7969, Lat: 32.0603},
	{Name: "苏州市", Province: "江苏", Lng: 120.6197, Lat: 31.2989},

	{Name: "杭州市", Province: "浙江", Lng: 120.1551, Lat: 30.2741},
	{Name: "济南市", Province: "山东", Lng: 117.0009, Lat: 36.6758},
	{Name: "武汉市", Province: "湖北", Lng: 114.2985, Lat: 30.5844},
	{Name: "长沙市", Province: "湖南", Lng: 112.9388, Lat: 28.2282},
	{Name: "成都市", Province: "四川", Lng: 104.0657, Lat: 30.6587},
	{Name: "沈阳市", Province: "辽宁", Lng: 123.4315, Lat: 41.8057},
	{Name: "长春市", Province: "吉林", Lng: 125.3245, Lat: 43.8868},
	{Name: "哈尔滨市", Province: "黑龙江", Lng: 126.5358, Lat: 45.8023},
	{Name: "合肥市", Province: "安徽", Lng: 117.2272, Lat: 31.8206},
	{Name: "厦门市", Province: "福建", Lng: 118.1689, Lat: 24.4797},
	{Name: "南昌市", Province: "江西", Lng: 115.8579, Lat: 28.6890},
	{Name: "石家庄市", Province: "河北", Lng: 114.4995, Lat: 38.1006},
	{Name: "太原市", Province: "山西", Lng: 112.5489, Lat: 37.8706},
	{Name: "昆明市", Province: "云南", Lng: 102.8329, Lat: 24.8801},
	{Name: "贵阳市", Province: "贵州", Lng: 106.7135, Lat: 26.5783},
	{Name: "海口市", Province: "海南", Lng: 110.3312, Lat: 20.0458},
	{Name: "兰州市", Province: "甘肃", Lng: 103.8236, Lat: 36.0581},
	{Name: "西宁市", Province: "青海", Lng: 101.7782, Lat: 36.6171},

	// Autonomous regions
	{Name: "呼和浩特市", Province: "内蒙古", Lng: 111.7508, Lat: 40.8414},
	{Name: "南宁市", Province: "广西", Lng: 108.3661, Lat: 22.8172},
	{Name: "乌鲁木齐市", Province: "新疆", Lng: 87.6177, Lat: 43.7928},

	// Special administrative regions
	{Name: "香港", Province: "香港", Lng: 114.1694, Lat: 22.3193},
}
