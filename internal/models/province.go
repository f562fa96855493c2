package models

import (
	"errors"
	"fmt"
)

// Province is a first-level administrative region of China.
// The set of values is closed; use ParseProvince to convert untrusted input.
type Province string

// Provinces in the order they are enumerated by the roster format.
const (
	ProvinceBeijing      Province = "北京"
	ProvinceShanghai     Province = "上海"
	ProvinceTianjin      Province = "天津"
	ProvinceChongqing    Province = "重庆"
	ProvinceHebei        Province = "河北"
	ProvinceShanxi       Province = "山西"
	ProvinceLiaoning     Province = "辽宁"
	ProvinceJilin        Province = "吉林"
	ProvinceHeilongjiang Province = "黑龙江"
	ProvinceJiangsu      Province = "江苏"
	ProvinceZhejiang     Province = "浙江"
	ProvinceAnhui        Province = "安徽"
	ProvinceFujian       Province = "福建"
	ProvinceJiangxi      Province = "江西"
	ProvinceShandong     Province = "山东"
	ProvinceHenan        Province = "河南"
	ProvinceHubei        Province = "湖北"
	ProvinceHunan        Province = "湖南"
	ProvinceGuangdong    Province = "广东"
	ProvinceHainan       Province = "海南"
	ProvinceSichuan      Province = "四川"
	ProvinceGuizhou      Province = "贵州"
	ProvinceYunnan       Province = "云南"
	ProvinceShaanxi      Province = "陕西"
	ProvinceGansu        Province = "甘肃"
	ProvinceQinghai      Province = "青海"
	ProvinceTaiwan       Province = "台湾"
	ProvinceInnerMongol  Province = "内蒙古"
	ProvinceGuangxi      Province = "广西"
	ProvinceTibet        Province = "西藏"
	ProvinceNingxia      Province = "宁夏"
	ProvinceXinjiang     Province = "新疆"
	ProvinceHongKong     Province = "香港"
	ProvinceMacau        Province = "澳门"
)

// ErrUnknownProvince is returned when a string is not one of the enumerated provinces.
var ErrUnknownProvince = errors.New("unknown province")

var allProvinces = [...]Province{
	ProvinceBeijing, ProvinceShanghai, ProvinceTianjin, ProvinceChongqing,
	ProvinceHebei, ProvinceShanxi, ProvinceLiaoning, ProvinceJilin, ProvinceHeilongjiang,
	ProvinceJiangsu, ProvinceZhejiang, ProvinceAnhui, ProvinceFujian, ProvinceJiangxi,
	ProvinceShandong, ProvinceHenan, ProvinceHubei, ProvinceHunan, ProvinceGuangdong,
	ProvinceHainan, ProvinceSichuan, ProvinceGuizhou, ProvinceYunnan, ProvinceShaanxi,
	ProvinceGansu, ProvinceQinghai, ProvinceTaiwan, ProvinceInnerMongol, ProvinceGuangxi,
	ProvinceTibet, ProvinceNingxia, ProvinceXinjiang, ProvinceHongKong, ProvinceMacau,
}

var provinceSet = func() map[Province]struct{} {
	set := make(map[Province]struct{}, len(allProvinces))
	for _, p := range allProvinces {
		set[p] = struct{}{}
	}
	return set
}()

// Provinces returns every enumerated province in declaration order.
func Provinces() []Province {
	out := make([]Province, len(allProvinces))
	copy(out, allProvinces[:])
	return out
}

// ParseProvince converts s into a Province.
// It returns an error wrapping ErrUnknownProvince if s is not enumerated.
func ParseProvince(s string) (Province, error) {
	p := Province(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvince, s)
	}
	return p, nil
}

// Valid reports whether p is one of the enumerated provinces.
func (p Province) Valid() bool {
	_, ok := provinceSet[p]
	return ok
}

func (p Province) String() string {
	return string(p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Province) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvince, string(p))
	}
	return []byte(p), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values are rejected.
func (p *Province) UnmarshalText(text []byte) error {
	parsed, err := ParseProvince(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
