package service

import "github.com/UnknownOlympus/campusmap/internal/models"

// CountByProvince returns the number of students per province.
func CountByProvince(students []models.Student) map[models.Province]int {
	counts := make(map[models.Province]int)
	for _, s := range students {
		counts[s.Province]++
	}
	return counts
}

// CountByUniversity returns the number of students per university.
func CountByUniversity(students []models.Student) map[string]int {
	counts := make(map[string]int)
	for _, s := range students {
		counts[s.University]++
	}
	return counts
}
