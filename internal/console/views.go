// Package console holds the state logic behind the admin manager views:
// filtering, counting and the small optimistic updates each view applies
// before or after calling the API.
package console

import (
	"math"
	"sort"
	"strings"

	"varsha-travels/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterAll selects every item in a filtered view.
const FilterAll = "all"

// States returns the distinct, sorted state names of ds.
func States(ds []models.Destination) []string {
	seen := make(map[string]bool)
	states := make([]string, 0)
	for _, d := range ds {
		if d.State == "" || seen[d.State] {
			continue
		}
		seen[d.State] = true
		states = append(states, d.State)
	}
	sort.Strings(states)
	return states
}

// AddState inserts state keeping the list sorted and unique.
func AddState(states []string, state string) []string {
	if state == "" {
		return states
	}
	i := sort.SearchStrings(states, state)
	if i < len(states) && states[i] == state {
		return states
	}
	out := make([]string, 0, len(states)+1)
	out = append(out, states[:i]...)
	out = append(out, state)
	return append(out, states[i:]...)
}

func FilterByState(ds []models.Destination, state string) []models.Destination {
	if state == "" || state == FilterAll {
		return ds
	}
	out := make([]models.Destination, 0, len(ds))
	for _, d := range ds {
		if d.State == state {
			out = append(out, d)
		}
	}
	return out
}

// PrependDestination puts a newly created destination at the top.
func PrependDestination(ds []models.Destination, d models.Destination) []models.Destination {
	return append([]models.Destination{d}, ds...)
}

// SortReviews returns a newest first copy.
func SortReviews(rs []models.Review) []models.Review {
	out := append([]models.Review(nil), rs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// RemoveReview drops id from rs. The view removes the row before the
// delete request returns and does not restore it on failure.
func RemoveReview(rs []models.Review, id string) []models.Review {
	return removeID(rs, id)
}

type identified[T any] interface {
	*T
	GetID() primitive.ObjectID
}

// removeID returns a copy of xs without the item whose hex id is id.
func removeID[T any, P identified[T]](xs []T, id string) []T {
	out := make([]T, 0, len(xs))
	for i := range xs {
		if P(&xs[i]).GetID().Hex() != id {
			out = append(out, xs[i])
		}
	}
	return out
}

// replaceID returns a copy of xs with the item sharing updated's id
// swapped for updated.
func replaceID[T any, P identified[T]](xs []T, updated T) []T {
	want := P(&updated).GetID()
	out := append([]T(nil), xs...)
	for i := range out {
		if P(&out[i]).GetID() == want {
			out[i] = updated
		}
	}
	return out
}

type ReviewStats struct {
	Total   int
	Average float64
	// Buckets[i] counts reviews rated i+1.
	Buckets [5]int
	Latest  []models.Review
}

func ComputeReviewStats(rs []models.Review) ReviewStats {
	sorted := SortReviews(rs)
	stats := ReviewStats{Total: len(sorted)}

	sum := 0
	for _, r := range sorted {
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			stats.Buckets[r.Rating-1]++
		}
	}
	if stats.Total > 0 {
		stats.Average = math.Round(float64(sum)/float64(stats.Total)*10) / 10
	}

	latest := 3
	if len(sorted) < latest {
		latest = len(sorted)
	}
	stats.Latest = sorted[:latest]
	return stats
}

// Message view filters.
const (
	MessagesUnread  = string(models.MessageStatusUnread)
	MessagesRead    = string(models.MessageStatusRead)
	MessagesReplied = string(models.MessageStatusReplied)
	MessagesStarred = "starred"
)

func FilterMessages(ms []models.ContactMessage, filter string) []models.ContactMessage {
	if filter == "" || filter == FilterAll {
		return ms
	}
	out := make([]models.ContactMessage, 0, len(ms))
	for _, m := range ms {
		if filter == MessagesStarred {
			if m.IsStarred {
				out = append(out, m)
			}
			continue
		}
		if string(m.Status) == filter {
			out = append(out, m)
		}
	}
	return out
}

type MessageCounts struct {
	All     int
	Unread  int
	Read    int
	Replied int
	Starred int
}

func CountMessages(ms []models.ContactMessage) MessageCounts {
	counts := MessageCounts{All: len(ms)}
	for _, m := range ms {
		switch m.Status {
		case models.MessageStatusUnread:
			counts.Unread++
		case models.MessageStatusRead:
			counts.Read++
		case models.MessageStatusReplied:
			counts.Replied++
		}
		if m.IsStarred {
			counts.Starred++
		}
	}
	return counts
}

// OpenUpdate is the update sent when a message is opened: unread messages
// become read, anything else needs no request.
func OpenUpdate(m models.ContactMessage) (models.ContactMessageUpdate, bool) {
	if m.Status != models.MessageStatusUnread {
		return models.ContactMessageUpdate{}, false
	}
	return models.ContactMessageUpdate{Status: models.Some(string(models.MessageStatusRead))}, true
}

func ToggleStarUpdate(m models.ContactMessage) models.ContactMessageUpdate {
	return models.ContactMessageUpdate{IsStarred: models.Some(!m.IsStarred)}
}

// ReplaceMessage swaps in the server copy of an updated message.
func ReplaceMessage(ms []models.ContactMessage, updated models.ContactMessage) []models.ContactMessage {
	return replaceID(ms, updated)
}

func FilterBookings(bs []models.Booking, status string) []models.Booking {
	if status == "" || status == FilterAll {
		return bs
	}
	out := make([]models.Booking, 0, len(bs))
	for _, b := range bs {
		if string(b.Status) == status {
			out = append(out, b)
		}
	}
	return out
}

// CountBookings counts per status. Every known status is present, zero or not.
func CountBookings(bs []models.Booking) map[models.BookingStatus]int {
	counts := make(map[models.BookingStatus]int, len(models.BookingStatuses))
	for _, s := range models.BookingStatuses {
		counts[s] = 0
	}
	for _, b := range bs {
		counts[b.Status]++
	}
	return counts
}

// ParseBookingStatus accepts a status name in any case.
func ParseBookingStatus(raw string) (models.BookingStatus, bool) {
	status := models.BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
	return status, status.Valid()
}
