// Package main provides the grad CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/grad-ml/grad/autodiff"
	"github.com/grad-ml/grad/internal/dataset"
	"github.com/grad-ml/grad/nn"
	"github.com/grad-ml/grad/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("grad %s\n", version)
			return
		case "train":
			if err := runTrain(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "grad train: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("grad - scalar autodiff engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train a small MLP on a toy dataset")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	var (
		name   = fs.String("dataset", "xor", "dataset to train on (simple, diag, split, xor)")
		n      = fs.Int("n", 100, "number of points to generate")
		hidden = fs.Int("hidden", 8, "hidden layer width")
		epochs = fs.Int("epochs", 200, "training epochs")
		lr     = fs.Float64("lr", 0.5, "learning rate")
		seed   = fs.Int64("seed", 42, "dataset and weight init seed")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := dataset.Generate(*name, *n, *seed)
	if err != nil {
		return err
	}

	model, err := nn.NewMLP(nn.MLPConfig{
		In:               2,
		Hidden:           []int{*hidden, *hidden},
		Out:              1,
		HiddenActivation: nn.ReLU,
		OutputActivation: nn.Sigmoid,
		Seed:             *seed,
	})
	if err != nil {
		return errors.Wrap(err, "building model")
	}

	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: *lr, Momentum: 0.9})

	fmt.Printf("Training on %q (%d points), %d epochs, lr %g\n", data.Name, data.Len(), *epochs, opt.GetLR())

	for epoch := 1; epoch <= *epochs; epoch++ {
		loss, acc, err := trainEpoch(model, data)
		if err != nil {
			return errors.Wrapf(err, "epoch %d", epoch)
		}
		if err := opt.Step(); err != nil {
			return errors.Wrapf(err, "epoch %d: optimizer step", epoch)
		}
		opt.ZeroGrad()

		if epoch == 1 || epoch%10 == 0 || epoch == *epochs {
			fmt.Printf("epoch %4d  loss %.4f  accuracy %5.1f%%\n", epoch, loss, acc*100)
		}
	}
	return nil
}

// trainEpoch builds one full-batch loss graph over the dataset, runs the
// backward pass, and reports the loss value and classification accuracy.
func trainEpoch(model *nn.MLP, data *dataset.Dataset) (loss, accuracy float64, err error) {
	preds := make([]*autodiff.Scalar, data.Len())
	targets := make([]*autodiff.Scalar, data.Len())
	correct := 0

	for i, point := range data.X {
		inputs := []*autodiff.Scalar{
			autodiff.Constant(point[0]),
			autodiff.Constant(point[1]),
		}
		out, err := model.Forward(inputs)
		if err != nil {
			return 0, 0, err
		}
		preds[i] = out[0]
		targets[i] = autodiff.Constant(float64(data.Y[i]))

		predicted := 0
		if out[0].Value() > 0.5 {
			predicted = 1
		}
		if predicted == data.Y[i] {
			correct++
		}
	}

	lossNode, err := nn.BCELoss(preds, targets)
	if err != nil {
		return 0, 0, err
	}
	if err := lossNode.Backward(); err != nil {
		return 0, 0, err
	}
	return lossNode.Value(), float64(correct) / float64(data.Len()), nil
}
