// Code generated by ent, DO NOT EDIT.

package paper

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vi3318/Research-AI-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldRunID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldTitle, v))
}

// Abstract applies equality check predicate on the "abstract" field. It's identical to AbstractEQ.
func Abstract(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldAbstract, v))
}

// FullText applies equality check predicate on the "full_text" field. It's identical to FullTextEQ.
func FullText(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldFullText, v))
}

// IngestionOrder applies equality check predicate on the "ingestion_order" field. It's identical to IngestionOrderEQ.
func IngestionOrder(v int) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldIngestionOrder, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldRunID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldTitle, v))
}

// AbstractEQ applies the EQ predicate on the "abstract" field.
func AbstractEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldAbstract, v))
}

// AbstractNEQ applies the NEQ predicate on the "abstract" field.
func AbstractNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldAbstract, v))
}

// AbstractIn applies the In predicate on the "abstract" field.
func AbstractIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldAbstract, vs...))
}

// AbstractNotIn applies the NotIn predicate on the "abstract" field.
func AbstractNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldAbstract, vs...))
}

// AbstractGT applies the GT predicate on the "abstract" field.
func AbstractGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldAbstract, v))
}

// AbstractGTE applies the GTE predicate on the "abstract" field.
func AbstractGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldAbstract, v))
}

// AbstractLT applies the LT predicate on the "abstract" field.
func AbstractLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldAbstract, v))
}

// AbstractLTE applies the LTE predicate on the "abstract" field.
func AbstractLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldAbstract, v))
}

// AbstractContains applies the Contains predicate on the "abstract" field.
func AbstractContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldAbstract, v))
}

// AbstractHasPrefix applies the HasPrefix predicate on the "abstract" field.
func AbstractHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldAbstract, v))
}

// AbstractHasSuffix applies the HasSuffix predicate on the "abstract" field.
func AbstractHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldAbstract, v))
}

// AbstractIsNil applies the IsNil predicate on the "abstract" field.
func AbstractIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldAbstract))
}

// AbstractNotNil applies the NotNil predicate on the "abstract" field.
func AbstractNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldAbstract))
}

// AbstractEqualFold applies the EqualFold predicate on the "abstract" field.
func AbstractEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldAbstract, v))
}

// AbstractContainsFold applies the ContainsFold predicate on the "abstract" field.
func AbstractContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldAbstract, v))
}

// FullTextEQ applies the EQ predicate on the "full_text" field.
func FullTextEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldFullText, v))
}

// FullTextNEQ applies the NEQ predicate on the "full_text" field.
func FullTextNEQ(v string) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldFullText, v))
}

// FullTextIn applies the In predicate on the "full_text" field.
func FullTextIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldFullText, vs...))
}

// FullTextNotIn applies the NotIn predicate on the "full_text" field.
func FullTextNotIn(vs ...string) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldFullText, vs...))
}

// FullTextGT applies the GT predicate on the "full_text" field.
func FullTextGT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldFullText, v))
}

// FullTextGTE applies the GTE predicate on the "full_text" field.
func FullTextGTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldFullText, v))
}

// FullTextLT applies the LT predicate on the "full_text" field.
func FullTextLT(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldFullText, v))
}

// FullTextLTE applies the LTE predicate on the "full_text" field.
func FullTextLTE(v string) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldFullText, v))
}

// FullTextContains applies the Contains predicate on the "full_text" field.
func FullTextContains(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContains(FieldFullText, v))
}

// FullTextHasPrefix applies the HasPrefix predicate on the "full_text" field.
func FullTextHasPrefix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasPrefix(FieldFullText, v))
}

// FullTextHasSuffix applies the HasSuffix predicate on the "full_text" field.
func FullTextHasSuffix(v string) predicate.Paper {
	return predicate.Paper(sql.FieldHasSuffix(FieldFullText, v))
}

// FullTextIsNil applies the IsNil predicate on the "full_text" field.
func FullTextIsNil() predicate.Paper {
	return predicate.Paper(sql.FieldIsNull(FieldFullText))
}

// FullTextNotNil applies the NotNil predicate on the "full_text" field.
func FullTextNotNil() predicate.Paper {
	return predicate.Paper(sql.FieldNotNull(FieldFullText))
}

// FullTextEqualFold applies the EqualFold predicate on the "full_text" field.
func FullTextEqualFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldEqualFold(FieldFullText, v))
}

// FullTextContainsFold applies the ContainsFold predicate on the "full_text" field.
func FullTextContainsFold(v string) predicate.Paper {
	return predicate.Paper(sql.FieldContainsFold(FieldFullText, v))
}

// IngestionOrderEQ applies the EQ predicate on the "ingestion_order" field.
func IngestionOrderEQ(v int) predicate.Paper {
	return predicate.Paper(sql.FieldEQ(FieldIngestionOrder, v))
}

// IngestionOrderNEQ applies the NEQ predicate on the "ingestion_order" field.
func IngestionOrderNEQ(v int) predicate.Paper {
	return predicate.Paper(sql.FieldNEQ(FieldIngestionOrder, v))
}

// IngestionOrderIn applies the In predicate on the "ingestion_order" field.
func IngestionOrderIn(vs ...int) predicate.Paper {
	return predicate.Paper(sql.FieldIn(FieldIngestionOrder, vs...))
}

// IngestionOrderNotIn applies the NotIn predicate on the "ingestion_order" field.
func IngestionOrderNotIn(vs ...int) predicate.Paper {
	return predicate.Paper(sql.FieldNotIn(FieldIngestionOrder, vs...))
}

// IngestionOrderGT applies the GT predicate on the "ingestion_order" field.
func IngestionOrderGT(v int) predicate.Paper {
	return predicate.Paper(sql.FieldGT(FieldIngestionOrder, v))
}

// IngestionOrderGTE applies the GTE predicate on the "ingestion_order" field.
func IngestionOrderGTE(v int) predicate.Paper {
	return predicate.Paper(sql.FieldGTE(FieldIngestionOrder, v))
}

// IngestionOrderLT applies the LT predicate on the "ingestion_order" field.
func IngestionOrderLT(v int) predicate.Paper {
	return predicate.Paper(sql.FieldLT(FieldIngestionOrder, v))
}

// IngestionOrderLTE applies the LTE predicate on the "ingestion_order" field.
func IngestionOrderLTE(v int) predicate.Paper {
	return predicate.Paper(sql.FieldLTE(FieldIngestionOrder, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.Paper {
	return predicate.Paper(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.Paper {
	return predicate.Paper(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Paper) predicate.Paper {
	return predicate.Paper(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Paper) predicate.Paper {
	return predicate.Paper(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Paper) predicate.Paper {
	return predicate.Paper(sql.NotPredicates(p))
}
