package response

import (
	"time"

	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReviewResponse struct {
	Success       bool      `json:"success"`
	ReviewID      uuid.UUID `json:"reviewId"`
	NeedsApproval bool      `json:"needsApproval"`
	Message       string    `json:"message"`
}

func FromCreateReviewResult(r *commands.CreateReviewResult) *CreateReviewResponse {
	msg := "Review submitted successfully"
	if r.NeedsApproval {
		msg = "Review submitted and is pending approval"
	}
	return &CreateReviewResponse{
		Success:       true,
		ReviewID:      r.ReviewID,
		NeedsApproval: r.NeedsApproval,
		Message:       msg,
	}
}

type ReviewAuthorResponse struct {
	Name string `json:"name"`
}

type TripReviewResponse struct {
	ID        uuid.UUID            `json:"id"`
	Rating    int                  `json:"rating"`
	Comment   *string              `json:"comment"`
	Images    []string             `json:"images"`
	TripDate  time.Time            `json:"tripDate"`
	CreatedAt time.Time            `json:"createdAt"`
	User      ReviewAuthorResponse `json:"user"`
}

// UserName receives TripReviewItem.UserName during copying.
func (r *TripReviewResponse) UserName(name string) {
	r.User.Name = name
}

type RatingStatsResponse struct {
	TotalReviews  int         `json:"totalReviews"`
	AverageRating float64     `json:"averageRating"`
	Distribution  map[int]int `json:"ratingDistribution"`
}

type TripReviewsResponse struct {
	Reviews    []*TripReviewResponse `json:"reviews"`
	Pagination PaginationResponse    `json:"pagination"`
	Stats      *RatingStatsResponse  `json:"stats"`
}

func FromTripReviewsPage(p *queries.TripReviewsPage) *TripReviewsResponse {
	res := &TripReviewsResponse{
		Reviews: make([]*TripReviewResponse, len(p.Reviews)),
		Stats:   &RatingStatsResponse{},
	}
	for i, it := range p.Reviews {
		var item TripReviewResponse
		mustCopy(&item, it)
		res.Reviews[i] = &item
	}
	mustCopy(&res.Pagination, &p.Pagination)
	stats := p.Stats
	if stats == nil {
		stats = queries.EmptyRatingStats()
	}
	mustCopy(res.Stats, stats)
	return res
}

type UserReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	TripID        uuid.UUID `json:"tripId"`
	TripTitle     string    `json:"tripTitle"`
	Rating        int       `json:"rating"`
	Comment       *string   `json:"comment"`
	Images        []string  `json:"images"`
	TripDate      time.Time `json:"tripDate"`
	NeedsApproval bool      `json:"needsApproval"`
	IsApproved    bool      `json:"isApproved"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromUserReviews(items []*queries.UserReviewItem) []*UserReviewResponse {
	res := make([]*UserReviewResponse, len(items))
	for i, it := range items {
		var item UserReviewResponse
		mustCopy(&item, it)
		res[i] = &item
	}
	return res
}

type UserReviewListResponse struct {
	Reviews    []*UserReviewResponse `json:"reviews"`
	NextCursor string                `json:"next_cursor,omitempty"`
}
