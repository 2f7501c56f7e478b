package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"gallery-analytics-service/internal/loadtest/core/domain"
)

// explorerPhotoCount bounds the random photo ids a photo explorer opens.
const explorerPhotoCount = 6

// userRun is the state of one simulated user while its script runs.
type userRun struct {
	ctx     context.Context
	uc      *RunLoadTestUseCase
	base    string
	session *domain.UserSession
	rng     *rand.Rand
}

func (u *userRun) get(path, description string) {
	u.uc.makeRequest(u.ctx, u.base, u.session, http.MethodGet, path, description)
}

// think pauses for a uniformly random duration in [minMS, maxMS] milliseconds.
func (u *userRun) think(minMS, maxMS int) {
	d := minMS + u.rng.IntN(maxMS-minMS+1)
	u.uc.sleeper.Sleep(u.ctx, time.Duration(d)*time.Millisecond)
}

var scripts = map[domain.Behavior]func(u *userRun){
	domain.CasualBrowser:   casualBrowsing,
	domain.PhotoExplorer:   photoExploration,
	domain.AnalyticsViewer: analyticsViewing,
	domain.APIUser:         apiUsage,
	domain.HeavyUser:       heavyUsage,
}

// casualBrowsing visits the homepage and, half of the time, the photo list.
func casualBrowsing(u *userRun) {
	u.get("/", "Homepage Visit")
	u.think(500, 2000)

	if u.rng.Float64() > 0.5 {
		u.get("/api/photos", "Photos API")
	}
}

// photoExploration lists the photos and then opens two to four of them.
func photoExploration(u *userRun) {
	u.get("/", "Homepage Visit")
	u.think(300, 1000)

	u.get("/api/photos", "Photos API")
	u.think(500, 1500)

	views := 2 + u.rng.IntN(3)
	for i := 0; i < views; i++ {
		id := 1 + u.rng.IntN(explorerPhotoCount)
		u.get(fmt.Sprintf("/api/photos/%d", id), fmt.Sprintf("Photo %d View", id))
		u.think(200, 800)
	}
}

func analyticsViewing(u *userRun) {
	u.get("/", "Homepage Visit")
	u.think(1000, 2000)

	u.get("/analytics.html", "Analytics Dashboard")
	u.think(500, 1000)

	u.get("/api/analytics", "Analytics API")
}

func apiUsage(u *userRun) {
	u.get("/api/health", "Health Check")
	u.think(100, 300)

	u.get("/api/photos", "Photos API")
	u.think(200, 500)

	u.get("/api/analytics", "Analytics API")
}

// heavyUsage repeats the full tour three times.
func heavyUsage(u *userRun) {
	for round := 1; round <= 3; round++ {
		u.get("/", fmt.Sprintf("Homepage Visit %d", round))
		u.get("/api/photos", fmt.Sprintf("Photos API %d", round))

		for id := 1; id <= 4; id++ {
			u.get(fmt.Sprintf("/api/photos/%d", id), fmt.Sprintf("Photo %d View %d", id, round))
			u.think(100, 300)
		}

		u.get("/api/analytics", fmt.Sprintf("Analytics API %d", round))
		u.think(200, 600)
	}
}
