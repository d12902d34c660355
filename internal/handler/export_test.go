package handler

// Export for testing
type FeedResponse = feedResponse
type FeedPreviewResponse = feedPreviewResponse
type CategoryResponse = categoryResponse
type ItemResponse = itemResponse
type SyncStatusResponse = syncStatusResponse
type SyncErrorResponse = syncErrorResponse
type SettingsResponse = settingsResponse

var WriteServiceError = writeServiceError
