package nn

import (
	"fmt"

	"github.com/grad-ml/grad/internal/autodiff"
)

// MSELoss builds the mean squared error node over prediction/target pairs:
//
//	L = mean((pred_i - target_i)²)
//
// Targets are usually constants; passing Param targets also works and gives
// them gradients.
func MSELoss(preds, targets []*autodiff.Scalar) (*autodiff.Scalar, error) {
	if err := checkPairs(preds, targets); err != nil {
		return nil, err
	}

	sum := autodiff.Constant(0)
	for i := range preds {
		diff := preds[i].Sub(targets[i])
		sum = sum.Add(diff.Mul(diff))
	}
	return sum.DivScalar(float64(len(preds)))
}

// BCELoss builds the binary cross-entropy node over probability predictions
// and 0/1 targets:
//
//	L = -mean(y_i * log(p_i) + (1 - y_i) * log(1 - p_i))
//
// Predictions must lie strictly inside (0, 1), as sigmoid outputs do;
// otherwise the log nodes fail with a DomainError.
func BCELoss(preds, targets []*autodiff.Scalar) (*autodiff.Scalar, error) {
	if err := checkPairs(preds, targets); err != nil {
		return nil, err
	}

	sum := autodiff.Constant(0)
	for i := range preds {
		logP, err := preds[i].Log()
		if err != nil {
			return nil, err
		}
		logNotP, err := preds[i].Neg().AddScalar(1.0).Log()
		if err != nil {
			return nil, err
		}
		y := targets[i]
		term := y.Mul(logP).Add(y.Neg().AddScalar(1.0).Mul(logNotP))
		sum = sum.Add(term)
	}

	mean, err := sum.DivScalar(float64(len(preds)))
	if err != nil {
		return nil, err
	}
	return mean.Neg(), nil
}

func checkPairs(preds, targets []*autodiff.Scalar) error {
	if len(preds) == 0 {
		return fmt.Errorf("nn: loss over empty prediction set")
	}
	if len(preds) != len(targets) {
		return fmt.Errorf("nn: %d predictions vs %d targets", len(preds), len(targets))
	}
	return nil
}
