package render

// Palette
var (
	RgbBackground = RGB{0, 0, 0}     // Deep space
	RgbLetterbox  = RGB{12, 12, 18}  // Outside the windowed play area
	RgbStar       = RGB{255, 255, 255}
	RgbFlash      = RGB{255, 255, 220} // Warm white ring

	RgbHealthBack = RGB{200, 30, 30}
	RgbHealthFill = RGB{30, 200, 30}
	RgbHUDText    = RGB{255, 255, 255}
	RgbBuffText   = RGB{100, 200, 255}
	RgbLevelText  = RGB{255, 200, 200}

	RgbChargeOutline = RGB{220, 220, 220}
	RgbChargeFill    = RGB{0, 255, 140}

	RgbGameOverTitle = RGB{200, 30, 30}
	RgbGameOverText  = RGB{255, 255, 255}
	RgbGameOverHint  = RGB{180, 180, 180}
)
