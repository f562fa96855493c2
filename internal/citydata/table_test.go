package citydata_test

import (
	"sync"
	"testing"

	"github.com/UnknownOlympus/campusmap/internal/citydata"
	"github.com/UnknownOlympus/campusmap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCityCoordinate(t *testing.T) {
	t.Parallel()

	t.Run("beijing", func(t *testing.T) {
		t.Parallel()
		city, ok := citydata.GetCityCoordinate("北京市")

		require.True(t, ok)
		assert.Equal(t, models.CityCoordinate{Name: "北京市", Province: "北京", Lng: 116.4074, Lat: 39.9042}, city)
	})

	t.Run("every city finds itself", func(t *testing.T) {
		t.Parallel()
		for _, want := range citydata.All() {
			got, ok := citydata.GetCityCoordinate(want.Name)

			require.True(t, ok, want.Name)
			assert.Equal(t, want, got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		city, ok := citydata.GetCityCoordinate("does-not-exist")

		assert.False(t, ok)
		assert.Zero(t, city)
	})

	t.Run("match is case and suffix sensitive", func(t *testing.T) {
		t.Parallel()
		_, ok := citydata.GetCityCoordinate("北京")
		assert.False(t, ok)

		_, ok = citydata.GetCityCoordinate(" 北京市")
		assert.False(t, ok)
	})
}

func TestGetCitiesByProvince(t *testing.T) {
	t.Parallel()

	t.Run("guangdong keeps table order", func(t *testing.T) {
		t.Parallel()
		cities := citydata.GetCitiesByProvince("广东")

		require.Len(t, cities, 2)
		assert.Equal(t, "广州市", cities[0].Name)
		assert.Equal(t, "深圳市", cities[1].Name)
	})

	t.Run("counts match the source table", func(t *testing.T) {
		t.Parallel()
		expected := make(map[string]int)
		for _, city := range citydata.All() {
			expected[city.Province]++
		}

		for province, count := range expected {
			cities := citydata.GetCitiesByProvince(province)

			assert.Len(t, cities, count, province)
			for _, city := range cities {
				assert.Equal(t, province, city.Province)
			}
		}
	})

	t.Run("unknown province", func(t *testing.T) {
		t.Parallel()
		cities := citydata.GetCitiesByProvince("no-such-province")

		assert.NotNil(t, cities)
		assert.Empty(t, cities)
	})

	t.Run("enumerated province without cities", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, citydata.GetCitiesByProvince(string(models.ProvinceTianjin)))
		assert.Empty(t, citydata.GetCitiesByProvince(string(models.ProvinceMacau)))
	})
}

func TestTable(t *testing.T) {
	t.Parallel()
	records := []models.CityCoordinate{
		{Name: "A", Province: "P1", Lng: 1, Lat: 1},
		{Name: "B", Province: "P2", Lng: 2, Lat: 2},
		{Name: "A", Province: "P2", Lng: 3, Lat: 3},
		{Name: "C", Province: "P1", Lng: 4, Lat: 4},
	}
	tbl := citydata.NewTable(records)

	t.Run("first match wins for duplicate names", func(t *testing.T) {
		t.Parallel()
		city, ok := tbl.GetCityCoordinate("A")

		require.True(t, ok)
		assert.InDelta(t, 1.0, city.Lng, 0)
	})

	t.Run("all matches in original order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []models.CityCoordinate{records[1], records[2]}, tbl.GetCitiesByProvince("P2"))
		assert.Equal(t, []models.CityCoordinate{records[0], records[3]}, tbl.GetCitiesByProvince("P1"))
	})

	t.Run("provinces in first-appearance order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"P1", "P2"}, tbl.Provinces())
	})

	t.Run("len and all", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 4, tbl.Len())
		assert.Equal(t, records, tbl.All())
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()
		empty := citydata.NewTable(nil)

		_, ok := empty.GetCityCoordinate("A")
		assert.False(t, ok)
		assert.Empty(t, empty.GetCitiesByProvince("P1"))
		assert.Empty(t, empty.Provinces())
	})
}

func TestDefaultTable(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 29, citydata.Default().Len())
	assert.Equal(t, "北京", citydata.Provinces()[0])
	assert.Equal(t, "香港", citydata.Provinces()[len(citydata.Provinces())-1])

	for _, city := range citydata.All() {
		assert.True(t, models.Province(city.Province).Valid(), city.Province)
		assert.GreaterOrEqual(t, city.Lng, -180.0)
		assert.LessOrEqual(t, city.Lng, 180.0)
		assert.GreaterOrEqual(t, city.Lat, -90.0)
		assert.LessOrEqual(t, city.Lat, 90.0)
	}
}

func TestConcurrentReads(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, city := range citydata.All() {
				got, ok := citydata.GetCityCoordinate(city.Name)
				assert.True(t, ok)
				assert.Equal(t, city, got)
				assert.NotEmpty(t, citydata.GetCitiesByProvince(city.Province))
			}
		}()
	}
	wg.Wait()
}
