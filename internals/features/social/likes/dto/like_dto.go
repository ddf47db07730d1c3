package dto

// LikeStatusResponse dikirim balik setelah toggle, dihitung pasca-mutasi
type LikeStatusResponse struct {
	LikesCount int64 `json:"likes_count"`
	Liked      bool  `json:"liked"`
}
