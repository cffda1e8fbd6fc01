package handlers

var (
	DestinationMessages = Messages{
		ListFailed:   "Failed to fetch destinations",
		NotFound:     "Destination not found",
		GetFailed:    "Failed to fetch destination",
		CreateFailed: "Failed to create destination",
		UpdateFailed: "Failed to update destination",
		Deleted:      "Destination deleted",
		DeleteFailed: "Failed to delete destination",
	}

	VehicleMessages = Messages{
		ListFailed:   "Failed to fetch vehicles",
		NotFound:     "Vehicle not found",
		GetFailed:    "Failed to fetch vehicle",
		CreateFailed: "Failed to create vehicle",
		UpdateFailed: "Failed to update vehicle",
		Deleted:      "Vehicle deleted",
		DeleteFailed: "Failed to delete vehicle",
	}

	ReviewMessages = Messages{
		ListFailed:   "Failed to fetch reviews",
		NotFound:     "Review not found",
		GetFailed:    "Failed to fetch review",
		CreateFailed: "Failed to create review",
		UpdateFailed: "Reviews cannot be edited",
		Deleted:      "Review deleted",
		DeleteFailed: "Failed to delete review",
	}

	BookingMessages = Messages{
		ListFailed:   "Failed to fetch bookings",
		NotFound:     "Booking not found",
		GetFailed:    "Failed to fetch booking",
		CreateFailed: "Failed to create booking",
		UpdateFailed: "Failed to update booking",
		Deleted:      "Booking deleted successfully",
		DeleteFailed: "Failed to delete booking",
	}

	ContactMessages = Messages{
		ListFailed:   "Failed to fetch messages",
		NotFound:     "Message not found",
		GetFailed:    "Failed to fetch message",
		CreateFailed: "Failed to send message",
		UpdateFailed: "Failed to update message",
		Deleted:      "Message deleted successfully",
		DeleteFailed: "Failed to delete message",
	}

	ContactSettingsMessages = Messages{
		GetFailed:    "Failed to fetch contact settings",
		NotFound:     "Contact settings not found",
		UpdateFailed: "Failed to update contact settings",
	}
)
