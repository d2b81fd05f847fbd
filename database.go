package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"artaura/internal/store"
)

const recentActivityLimit = 20

func initDB(path string, logger *zap.Logger) (*store.SQLite, error) {
	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database ready", zap.String("path", path))
	return db, nil
}

func (s *Server) logActivity(ctx context.Context, clientID string, in Intent) {
	if err := s.db.LogActivity(ctx, clientID, in.Action, in.TargetID, in.Target); err != nil {
		s.log.Error("failed to log activity", zap.String("action", in.Action), zap.Error(err))
	}
}

func (s *Server) recentActivity(ctx context.Context, clientID string) []store.Activity {
	acts, err := s.db.RecentActivity(ctx, clientID, recentActivityLimit)
	if err != nil {
		s.log.Error("failed to read activity", zap.Error(err))
		return []store.Activity{}
	}
	return acts
}
