package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/JUN1078/game-based-learning/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
	as *AnalyticsService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService, as *AnalyticsService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps, as: as}
}

// EmitAlert persists an alert and fans it out to websocket listeners
// and registered push devices. Safe to call from anywhere; a no-op
// before InitAlertDeps.
func EmitAlert(userID, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "New Alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// EmitLeaderboardUpdate recomputes a game's leaderboard and broadcasts
// it to all websocket listeners. Fired after an attempt completes.
func EmitLeaderboardUpdate(ctx context.Context, gameID string) {
	if _alert.rt == nil || _alert.as == nil {
		return
	}
	entries, err := _alert.as.Leaderboard(ctx, gameID, 0)
	if err != nil {
		log.Printf("leaderboard refresh failed for game %s: %v", gameID, err)
		return
	}
	_alert.rt.Broadcast(map[string]any{
		"kind":    "leaderboard.updated",
		"gameId":  gameID,
		"entries": entries,
	})
}

func ListAlerts(db *gorm.DB, userID string, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
