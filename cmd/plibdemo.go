package main

import (
	"fmt"

	"github.com/rudessa/rudova-tppl/options"
	"github.com/rudessa/rudova-tppl/plib"
	log "github.com/sirupsen/logrus"
)

func main() {

	opts := options.NewPlibOptions(&options.PlibOptions{
		Debug: true,
		//CPUProfile: true,
	})
	opts.Apply()
	defer opts.StartProfile().Stop()

	a := plib.New(3, 4)
	b := plib.New(-1, 2)

	fmt.Printf("a = %v, b = %v\n", a, b)
	fmt.Printf("a + b = %v\n", a.Add(b))
	fmt.Printf("a - b = %v\n", a.Sub(b))
	fmt.Printf("-a = %v\n", a.Neg())
	fmt.Printf("distance a to b %.3f\n", a.To(b))
	fmt.Printf("a is center %v, origin is center %v\n", a.IsCenter(), plib.Center.IsCenter())

	acc := plib.Center
	for _, step := range []plib.Point{a, b, b.Neg()} {
		acc = acc.Add(step)
	}
	fmt.Printf("accumulated %v\n", acc)

	text := a.ToJSON()
	fmt.Printf("a as json %s\n", text)
	back, err := plib.FromJSON(text)
	if err != nil {
		log.Errorf("Error decoding point: %v", err)
		return
	}
	if ok, err := back.Eq(a); err != nil || !ok {
		log.Errorf("round trip mismatch %v != %v (%v)", back, a, err)
		return
	}
	log.Infof("round trip ok %v", back)

	if _, err := plib.FromValues(1.5, 1); err != nil {
		log.Errorf("Error creating point: %v", err)
	}
	if _, err := a.Eq("not a point"); err != nil {
		log.Errorf("Error comparing point: %v", err)
	}
	if _, err := plib.FromJSON(`{"x": 1.5, "y": 2}`); err != nil {
		log.Errorf("Error decoding point: %v (kind %s)", err, plib.GetKind(err))
	}
}
