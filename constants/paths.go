package constants

// Default file locations, relative to the working directory
const (
	DefaultAssetsDir     = "assets"
	DefaultPurchasesFile = "purchases.json"
	DefaultTopScoreFile  = "top_score.txt"
	DefaultCoinsFile     = "coins.txt"
	DefaultLogDir        = "logs"
	DefaultLogFile       = "void-shooter.log"
)
