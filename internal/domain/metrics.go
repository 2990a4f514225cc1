package domain

// Standard regression error metrics for one dataset split.
// All values are in the target's unit (minutes), except R2 which is
// the dimensionless fraction of target variance explained.
type Metrics struct {
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
	R2   float64 `json:"r2"`
}
