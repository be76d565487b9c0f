package constants

import "fmt"

//ProjectID Default GCP project.
const ProjectID = "butterfly-steps"

//FirebaseURL Default Realtime DB URL.
const FirebaseURL = "https://butterfly-steps-default-rtdb.firebaseio.com"

//CollectionUsers Name of the collection.
const CollectionUsers = "users"

//CollectionTeams Name of the collection.
const CollectionTeams = "teams"

//CollectionChallenges Name of the collection.
const CollectionChallenges = "challenges"

//CollectionStats Name of the collection.
const CollectionStats = "stats"

//DocCommunityStats ID of the community stats singleton inside CollectionStats.
const DocCommunityStats = "community"

//SubcollectionDailySteps Name of the per-user subcollection.
const SubcollectionDailySteps = "dailySteps"

//TopicStepsSubmitted Name of the topic.
const TopicStepsSubmitted = "steps-submitted"

//TopicCoinCollected Name of the topic.
const TopicCoinCollected = "chrysalis-coin-collected"

//TopicBadgeAwarded Name of the topic.
const TopicBadgeAwarded = "badge-awarded"

//DbCoinCountersPrefix Prefix of coin counters data in Realtime DB.
const DbCoinCountersPrefix = "coinCounters/"

//DbStepCountersPrefix Prefix of step counters data in Realtime DB.
const DbStepCountersPrefix = "stepCounters/"

//CacheKeyCommunityStats Redis key of cached community stats.
const CacheKeyCommunityStats = "community-stats"

//LockReconcileAggregates Name of the reconciliation mutex.
const LockReconcileAggregates = "reconcile-aggregates"

//SecretGenAIKey Name of the secret holding the GenAI API key.
const SecretGenAIKey = "genai-api-key"

//SecretAdminAPIKey Name of the secret guarding admin functions.
const SecretAdminAPIKey = "admin-apikey"

//DailyStepsCollection Path of the daily steps subcollection of given user.
func DailyStepsCollection(uid string) string {
	return fmt.Sprintf("%s/%s/%s", CollectionUsers, uid, SubcollectionDailySteps)
}

//UserTopic FCM topic every client subscribes to for its own user.
func UserTopic(uid string) string {
	return "user-" + uid
}
