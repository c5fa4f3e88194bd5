package domain

const (
	CollectionUser = "auth_users"
)

const (
	CollectionMedia = "catalogue_media"
)

const (
	CollectionReview = "catalogue_reviews"
)
const (
	CollectionFavorite = "catalogue_favorites"
)
const (
	CollectionSaved = "catalogue_saved"
)
const (
	CollectionOnboardingSelection = "catalogue_onboarding_selections"
)

const (
	CollectionEngagementEvent = "recommendation_engagement_events"
)
const (
	CollectionExclusion = "recommendation_exclusions"
)
