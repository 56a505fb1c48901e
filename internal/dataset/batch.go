package dataset

// Batch is batchSize independent samples stacked along a new leading
// axis: events [B][L], style tags [B], progress [B][L][C].
type Batch struct {
	Events   [][]int
	Styles   []int
	Progress [][][]float64
}

// Batcher bundles samples from one sampler into training batches.
type Batcher struct {
	sampler *Sampler
}

func NewBatcher(sampler *Sampler) *Batcher {
	return &Batcher{sampler: sampler}
}

// Batch draws batchSize independent samples of seqLen events each.
// Draws may repeat compositions within a batch.
func (b *Batcher) Batch(batchSize, seqLen int) (*Batch, error) {
	batch := &Batch{
		Events:   make([][]int, 0, batchSize),
		Styles:   make([]int, 0, batchSize),
		Progress: make([][][]float64, 0, batchSize),
	}
	for i := 0; i < batchSize; i++ {
		s, err := b.sampler.Sample(seqLen)
		if err != nil {
			return nil, err
		}
		batch.Events = append(batch.Events, s.Events)
		batch.Styles = append(batch.Styles, s.Style)
		batch.Progress = append(batch.Progress, s.Progress)
	}
	return batch, nil
}
