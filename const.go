package confocal

const (
	defaultTargetWidth     = 500
	defaultTargetHeight    = 500
	defaultTargetIntensity = 200
	defaultRandomness      = 0.2
	defaultPadding         = 10
	defaultSearchStride    = 4
	defaultRowLabelSize    = 48
	defaultColumnLabelSize = 36
	defaultFontFamily      = "go"
)

const (
	labelInset        = 10
	labelShadowOffset = 1
	defaultMontageGap = 10
)

// Rec. 601 luma weights.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)
