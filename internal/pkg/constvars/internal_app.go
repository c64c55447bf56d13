package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
)

const (
	ResourceRecommendation = "recommendation"
	ResourceGoal           = "goal"
	ResourceCounseling     = "counseling"
	ResourceVitals         = "vitals"
)

const (
	URLParamRecommendationID = "recommendationID"
	URLParamBlockID          = "blockID"
)

// Redis key formats. Block state carries the render generation so a commit
// against a block replaced by a newer render can be detected.
const (
	RedisKeyCardCacheFormat   = "recommendation:%s"
	RedisKeyBlockFormat       = "block:%s"
	RedisKeyBlockSetFormat    = "recommendation:%s:blocks"
	RedisKeyRenderGenFormat   = "recommendation:%s:generation"
	RedisKeyCommitLockFormat  = "block:%s:pending"
	RedisKeyVitalsTableFormat = "vitals:%s:table"
)
