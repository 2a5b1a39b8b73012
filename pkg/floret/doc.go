// Package floret trains binary decision trees over fixed-schema flower
// measurements and classifies new samples against them.
//
// Quick start:
//
//	tree, err := floret.Train(samples, floret.WithMaxDepth(5))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	class := tree.Classify(floret.Sample{
//	    SepalLength: 5.1, SepalWidth: 3.5,
//	    PetalLength: 1.4, PetalWidth: 0.2,
//	})
//	fmt.Println(class) // setosa
//
// A trained Tree is immutable and safe for concurrent use.
package floret
