// controllers/report.go
package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// ReportController handles all reporting functions
type ReportController struct {
	Store Store
}

// StatsSummary represents the aggregates behind the admin charts
type StatsSummary struct {
	ByDay      []DayCount      `json:"byDay"`
	ByStatus   map[string]int  `json:"byStatus"`
	ByService  []ServiceCount  `json:"byService"`
	QuickStats QuickStatistics `json:"quickStats"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ServiceCount struct {
	Service string `json:"service"`
	Count   int    `json:"count"`
}

type QuickStatistics struct {
	TotalAppointments int `json:"totalAppointments"`
	TodayTotal        int `json:"todayTotal"`
	TodayPending      int `json:"todayPending"`
	TodayInProgress   int `json:"todayInProgress"`
}

// GetStats returns appointment aggregates: counts per day over the last
// ten days, counts per status, and the most requested services
func (rc *ReportController) GetStats(c *gin.Context) {
	all, err := rc.Store.ListAppointments(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load appointments")
		return
	}

	byDate := map[string]int{}
	byStatus := map[string]int{}
	byService := map[string]int{}
	for _, a := range all {
		byDate[a.Date]++
		byStatus[string(a.Status)]++
		if a.Service != "" {
			byService[a.Service]++
		}
	}

	byDay := make([]DayCount, 0, 10)
	for _, date := range utils.LastNDates(time.Now(), 10) {
		byDay = append(byDay, DayCount{Date: date, Count: byDate[date]})
	}

	services := make([]ServiceCount, 0, len(byService))
	for service, count := range byService {
		services = append(services, ServiceCount{Service: service, Count: count})
	}
	sort.Slice(services, func(i, j int) bool {
		if services[i].Count != services[j].Count {
			return services[i].Count > services[j].Count
		}
		return services[i].Service < services[j].Service
	})
	if len(services) > 8 {
		services = services[:8]
	}

	quick := QuickStatistics{TotalAppointments: len(all)}
	if today, err := rc.Store.TodayAppointments(c.Request.Context()); err == nil {
		quick.TodayTotal = len(today)
		for _, a := range today {
			switch a.Status {
			case models.StatusScheduled:
				quick.TodayPending++
			case models.StatusInProgress:
				quick.TodayInProgress++
			}
		}
	}

	c.JSON(http.StatusOK, StatsSummary{
		ByDay:      byDay,
		ByStatus:   byStatus,
		ByService:  services,
		QuickStats: quick,
	})
}
