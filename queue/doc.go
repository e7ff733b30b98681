// Package queue provides a generic first-in–first-out queue backed by a
// growable ring buffer.
//
// 🚀 What is Queue?
//
//	Queue[T] is the container the k-way merge consumes and produces: values
//	are appended at the tail with Enqueue and removed from the head with
//	Dequeue, strictly in arrival order.
//
// ✨ Key features:
//   - Enqueue always succeeds; storage grows geometrically (amortized O(1)).
//   - Dequeue / Front on an empty queue return ErrEmptyQueue instead of a
//     magic value, so a legitimate -1 is never confused with "empty".
//   - Dequeued slots are zeroed and reused; memory is bounded by the peak
//     number of live elements, not by the total ever enqueued.
//   - Values, Drain and String expose the contents for printing and tests.
//
// ⚙️ Usage:
//
//	q := queue.From(1, 4, 7)
//	q.Enqueue(10)
//	for !q.IsEmpty() {
//		v, _ := q.Dequeue()
//		fmt.Println(v)
//	}
//
// Performance:
//
//   - Enqueue: amortized O(1)
//   - Dequeue / Front / Len / IsEmpty: O(1)
//   - Values / Drain / String: O(n)
//
// Thread safety:
//
//	Queue is NOT safe for concurrent use. Callers sharing one instance across
//	goroutines must synchronize externally.
package queue
