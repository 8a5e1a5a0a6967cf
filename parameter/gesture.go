package parameter

// Hand landmark indices of the 21-point hand model
const (
	LandmarkWrist     = 0
	LandmarkThumbTip  = 4
	LandmarkIndexPIP  = 6
	LandmarkIndexTip  = 8
	LandmarkMiddleTip = 12
	LandmarkRingTip   = 16
	LandmarkPinkyTip  = 20

	LandmarkCount = 21
)

// Accepted landmark coordinate range, trackers report points slightly off-frame
const (
	LandmarkMinCoord = -1.0
	LandmarkMaxCoord = 2.0
)

// Finger-gun thresholds in normalized image units
const (
	IndexExtendThreshold = 0.25
	ThumbExtendThreshold = 0.2
	CurlThreshold        = 0.18
)
