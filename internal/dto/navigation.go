package dto

// ── 导航壳 DTO ──

// ScreenResponse 功能页面入口
type ScreenResponse struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// EventsPlaceholderResponse 活动页占位内容
type EventsPlaceholderResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
