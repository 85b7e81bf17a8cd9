package service

import "campus-portal/internal/dto"

// screens 导航壳挂载的功能页面，顺序即展示顺序
var screens = []dto.ScreenResponse{
	{Name: "home", Title: "Ana Sayfa", Path: "/api/v1/exam-calendar/home"},
	{Name: "cafeteria", Title: "Yemekhane", Path: "/api/v1/cafeteria/menus"},
	{Name: "exam-calendar", Title: "Sınav Takvimi", Path: "/api/v1/exam-calendar/exams"},
	{Name: "attendance", Title: "Devamsızlık", Path: "/api/v1/attendance/courses"},
	{Name: "schedule", Title: "Ders Programı", Path: "/api/v1/schedule/day"},
	{Name: "events", Title: "Etkinlikler", Path: "/api/v1/events"},
}

// NavigationService 导航壳与占位页面
type NavigationService interface {
	Screens() []dto.ScreenResponse
	Events() *dto.EventsPlaceholderResponse
}

type navigationService struct{}

// NewNavigationService 创建 NavigationService 实例
func NewNavigationService() NavigationService {
	return &navigationService{}
}

func (s *navigationService) Screens() []dto.ScreenResponse {
	out := make([]dto.ScreenResponse, len(screens))
	copy(out, screens)
	return out
}

func (s *navigationService) Events() *dto.EventsPlaceholderResponse {
	return &dto.EventsPlaceholderResponse{
		Title:   "Etkinlikler Sayfası",
		Message: "Buraya etkinlikler modülü geliştirilecek.",
	}
}
