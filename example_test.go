package symdq_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/symdq"
)

// ExampleEngine_Screw builds the rotation by theta about the z axis through
// the point (x, 0, 0).
func ExampleEngine_Screw() {
	eng, err := symdq.New()
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Screw(context.Background(), symdq.ScrewParams{
		L:     symdq.Vector3{"0", "0", "1"},
		M:     symdq.Vector3{"0", "-x", "0"},
		Theta: "theta",
		D:     "0",
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Real)
	fmt.Println(res.Dual)
	// Output:
	// [cos(1/2*theta) 0 0 sin(1/2*theta)]
	// [0 0 -sin(1/2*theta)*x 0]
}

// ExampleEngine_IsUnit checks a numeric screw motion.
func ExampleEngine_IsUnit() {
	eng, err := symdq.New(symdq.WithDomain(symdq.DomainNumeric))
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.IsUnit(context.Background(), symdq.Motion{
		Screw: &symdq.ScrewParams{
			L:     symdq.Vector3{"0", "0", "1"},
			M:     symdq.Vector3{"0", "-2", "0"},
			Theta: "pi/3",
			D:     "0.5",
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Unit)
	// Output: true
}
