package sat

import "fmt"

func ExampleNewLitQueue() {
	q := NewLitQueue(2)

	fmt.Println(q)

	q.Push(PositiveLiteral(1))
	q.Push(NegativeLiteral(2))

	fmt.Println(q)

	// Output:
	// LitQueue[]
	// LitQueue[1 !2]
}

func ExampleLitQueue_IsEmpty() {
	q := NewLitQueue(1)

	fmt.Println(q.IsEmpty())
	q.Push(PositiveLiteral(1))
	fmt.Println(q.IsEmpty())

	// Output:
	// true
	// false
}

func ExampleLitQueue_Pop() {
	q := NewLitQueue(1)

	q.Push(PositiveLiteral(1))
	q.Push(PositiveLiteral(2))
	q.Push(NegativeLiteral(3))
	q.Push(PositiveLiteral(4))

	q.Pop()
	q.Pop()

	fmt.Println(q)

	// Output:
	// LitQueue[!3 4]
}
